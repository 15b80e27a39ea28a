package exporter

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/badele/multisplit/internal/types"
)

///////////////////////////////////////////////////////////////////////////////
// Grid
///////////////////////////////////////////////////////////////////////////////

// Grid lays tokens out in aligned columns, like `ls` does with file names,
// on a tcell simulation screen used as a cell buffer.
type Grid struct {
	screen    tcell.SimulationScreen
	width     int
	height    int
	colWidth  int
	columns   int
	highlight bool
}

// NewGrid sizes a grid for tokens on a width-column display. With
// highlight, every other column is drawn bold and ExportANSI shows it.
func NewGrid(tokens []types.Token, width int, highlight bool) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("grid width must be positive, got %d", width)
	}

	colWidth := 1
	for _, token := range tokens {
		if w := uniseg.StringWidth(token.Value) + 1; w > colWidth {
			colWidth = w
		}
	}
	if colWidth > width {
		colWidth = width
	}

	columns := width / colWidth
	height := (len(tokens) + columns - 1) / columns
	if height == 0 {
		height = 1
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}
	screen.SetSize(width, height)

	g := &Grid{
		screen:    screen,
		width:     width,
		height:    height,
		colWidth:  colWidth,
		columns:   columns,
		highlight: highlight,
	}

	for i, token := range tokens {
		g.draw(i, token.Value)
	}
	screen.Show()

	return g, nil
}

func (g *Grid) draw(i int, value string) {
	col := i % g.columns
	row := i / g.columns
	x := col * g.colWidth
	limit := x + g.colWidth - 1
	if g.columns == 1 {
		limit = g.width
	}

	style := tcell.StyleDefault
	if g.highlight && col%2 == 1 {
		style = style.Bold(true)
	}

	state := -1
	rest := value
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}

		runes := []rune(cluster)
		g.screen.SetContent(x, row, runes[0], runes[1:], style)
		x += w
	}
}

// Dimensions returns the grid size in cells.
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

func (g *Grid) Columns() int {
	return g.columns
}

// ExportPlainText reads the cells back, one line per row, without trailing
// blanks.
func (g *Grid) ExportPlainText() string {
	return g.export(false)
}

// ExportANSI is ExportPlainText with SGR bold sequences for highlighted
// columns.
func (g *Grid) ExportANSI() string {
	return g.export(true)
}

func (g *Grid) export(ansi bool) string {
	lines := make([]string, 0, g.height)

	for y := 0; y < g.height; y++ {
		var line strings.Builder
		bold := false

		for x := 0; x < g.width; {
			mainc, combc, style, w := g.screen.GetContent(x, y)
			if w < 1 {
				w = 1
			}

			if ansi {
				_, _, attrs := style.Decompose()
				cellBold := attrs&tcell.AttrBold != 0 && mainc != 0 && mainc != ' '
				if cellBold != bold {
					if cellBold {
						line.WriteString("\x1b[1m")
					} else {
						line.WriteString("\x1b[22m")
					}
					bold = cellBold
				}
			}

			if mainc == 0 {
				line.WriteByte(' ')
			} else {
				line.WriteRune(mainc)
				for _, r := range combc {
					line.WriteRune(r)
				}
			}
			x += w
		}

		if bold {
			line.WriteString("\x1b[22m")
		}

		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	return strings.Join(lines, "\n")
}

func (g *Grid) Close() {
	g.screen.Fini()
}

// ExportGrid renders tokens as aligned columns fitting in width cells.
func ExportGrid(tokens []types.Token, width int, highlight bool) (string, error) {
	if len(tokens) == 0 {
		return "", nil
	}

	grid, err := NewGrid(tokens, width, highlight)
	if err != nil {
		return "", err
	}
	defer grid.Close()

	if highlight {
		return grid.ExportANSI(), nil
	}
	return grid.ExportPlainText(), nil
}
