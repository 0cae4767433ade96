package pretty

import (
	"github.com/gosuri/uitable"

	"punnett/internal/genetics"
)

// Options control the Punnett square rendering.
type Options struct {
	Corner      string // top-left cell; default "x"
	EmptyGlyph  string // shown for empty gametes/genotypes; default "-"
	MaxColWidth uint   // cell width cap; 0 means default (40)
}

// DefaultOptions is what the grid format uses.
var DefaultOptions = Options{
	Corner:      "x",
	EmptyGlyph:  "-",
	MaxColWidth: 40,
}

// RenderSquare draws the Punnett square of c: the second parent's gametes
// across the top, the first parent's down the side, each cell holding the
// child of that pairing.
func RenderSquare(c genetics.Cross) string {
	return RenderSquareWithOptions(c, DefaultOptions)
}

// RenderSquareWithOptions is RenderSquare with explicit options.
func RenderSquareWithOptions(c genetics.Cross, opt Options) string {
	if opt.Corner == "" {
		opt.Corner = DefaultOptions.Corner
	}
	if opt.EmptyGlyph == "" {
		opt.EmptyGlyph = DefaultOptions.EmptyGlyph
	}
	if opt.MaxColWidth == 0 {
		opt.MaxColWidth = DefaultOptions.MaxColWidth
	}
	cell := func(s string) interface{} {
		if s == "" {
			return opt.EmptyGlyph
		}
		return s
	}

	rows, cols := c.Parents[0].Gametes, c.Parents[1].Gametes
	tbl := uitable.New()
	tbl.MaxColWidth = opt.MaxColWidth

	header := make([]interface{}, 0, len(cols)+1)
	header = append(header, opt.Corner)
	for _, g := range cols {
		header = append(header, cell(g))
	}
	tbl.AddRow(header...)

	for i, g := range rows {
		row := make([]interface{}, 0, len(cols)+1)
		row = append(row, cell(g))
		for _, child := range c.Children[i*len(cols) : (i+1)*len(cols)] {
			row = append(row, cell(child))
		}
		tbl.AddRow(row...)
	}
	return tbl.String() + "\n"
}
