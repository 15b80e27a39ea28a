package exporter

const (
	FormatLines  = "lines"
	FormatJoined = "joined"
	FormatJSON   = "json"
	FormatTable  = "table"
	FormatStats  = "stats"
	FormatGrid   = "grid"
)

var formats = []string{FormatLines, FormatJoined, FormatJSON, FormatTable, FormatStats, FormatGrid}

func Formats() []string {
	return append([]string(nil), formats...)
}

func IsFormat(name string) bool {
	for _, f := range formats {
		if f == name {
			return true
		}
	}
	return false
}
