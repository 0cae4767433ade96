// internal/writers/table.go
package writers

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"

	"punnett/internal/genetics"
)

func init() { Register("table", WriteTable) }

// WriteTable prints aligned class/count/probability columns for the genotypes
// and, when requested, a second table for the phenotypes.
func WriteTable(w io.Writer, c genetics.Cross, opt Options) error {
	if err := writeClassTable(w, "GENOTYPE", c.Genotypes, opt); err != nil {
		return err
	}
	if !opt.Phenotypes {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeClassTable(w, "PHENOTYPE", c.Phenotypes, opt)
}

func writeClassTable(w io.Writer, title string, f *genetics.Frequencies, opt Options) error {
	tbl := uitable.New()
	tbl.MaxColWidth = 80
	if opt.Header {
		tbl.AddRow(title, "COUNT", "PROBABILITY")
	}
	probs := f.Probabilities(opt.Sort)
	for i, cl := range f.Classes(opt.Sort) {
		key := cl.Key
		if key == "" {
			key = "-"
		}
		tbl.AddRow(key, cl.Count, fmt.Sprintf("%.4f", probs[i]))
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}
