// Package charset converts text between UTF-8 and the legacy encodings the
// CLI accepts on input and output.
package charset

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const UTF8 = "utf8"

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var encodings = map[string]encoding.Encoding{
	"cp437":       charmap.CodePage437,
	"cp850":       charmap.CodePage850,
	"cp1252":      charmap.Windows1252,
	"iso-8859-1":  charmap.ISO8859_1,
	"iso-8859-15": charmap.ISO8859_15,
	"utf16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// Names lists every supported encoding name, utf8 included.
func Names() []string {
	names := []string{UTF8}
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

func IsSupported(name string) bool {
	if name == UTF8 {
		return true
	}
	_, ok := encodings[name]
	return ok
}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// ConvertToUTF8 converts data from sourceEncoding to UTF-8.
// The UTF-8 BOM is stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == UTF8 || sourceEncoding == "" {
		return stripUTF8BOM(data), nil
	}

	enc, ok := encodings[sourceEncoding]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	utf8Data, err := convert(data, enc.NewDecoder())
	if err != nil {
		return nil, err
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// ConvertToEncoding converts UTF-8 data to targetEncoding.
func ConvertToEncoding(data []byte, targetEncoding string) ([]byte, error) {
	if targetEncoding == UTF8 || targetEncoding == "" {
		return data, nil
	}

	enc, ok := encodings[targetEncoding]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %s", targetEncoding)
	}

	return convert(data, enc.NewEncoder())
}

func convert(data []byte, t transform.Transformer) ([]byte, error) {
	reader := transform.NewReader(bytes.NewReader(data), t)
	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}
	return out, nil
}
