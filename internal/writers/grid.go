// internal/writers/grid.go
package writers

import (
	"io"

	"punnett/internal/genetics"
	"punnett/internal/pretty"
)

func init() { Register("grid", WriteGrid) }

// WriteGrid prints the Punnett square followed by the genotype summary line.
func WriteGrid(w io.Writer, c genetics.Cross, opt Options) error {
	if _, err := io.WriteString(w, pretty.RenderSquare(c)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nUnique genotypes: "+classLine(c.Genotypes, opt.Sort)+"\n")
	return err
}
