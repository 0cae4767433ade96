// internal/writers/text.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"punnett/internal/genetics"
)

func init() { Register("text", WriteText) }

// WriteText prints the classic report: the derivation of each parent, every
// child genotype in pairing order, then the distinct genotypes as
// "<count><genotype>" joined by " : ".
func WriteText(w io.Writer, c genetics.Cross, opt Options) error {
	bw := bufio.NewWriter(w)
	for _, p := range c.Parents {
		fmt.Fprintf(bw, "Genotype: %s\n", p.Genotype)
		fmt.Fprintf(bw, "Genes: %s\n", quoteList(p.Genes))
		fmt.Fprintf(bw, "Alleles: %s\n", alleleList(p.Alleles))
		fmt.Fprintf(bw, "Gametes: %s\n", quoteList(p.Gametes))
		fmt.Fprintln(bw)
	}
	fmt.Fprintf(bw, "Children genotypes: %s\n", quoteList(c.Children))
	fmt.Fprintf(bw, "Unique genotypes: %s\n", classLine(c.Genotypes, opt.Sort))
	if opt.Phenotypes {
		fmt.Fprintf(bw, "Genotype ratio: %s\n", c.Genotypes.Ratio(opt.Sort))
		fmt.Fprintf(bw, "Phenotypes: %s\n", classLine(c.Phenotypes, opt.Sort))
		fmt.Fprintf(bw, "Phenotype ratio: %s\n", c.Phenotypes.Ratio(opt.Sort))
	}
	return bw.Flush()
}

func classLine(f *genetics.Frequencies, sorted bool) string {
	classes := f.Classes(sorted)
	parts := make([]string, 0, len(classes))
	for _, cl := range classes {
		parts = append(parts, strconv.Itoa(cl.Count)+cl.Key)
	}
	return strings.Join(parts, " : ")
}

// quote renders s the way the report has always shown strings: single quotes
// unless s itself holds a single quote and no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

func quoteList(ss []string) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = quote(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func alleleList(ps []genetics.AllelePair) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		second := "None"
		if p.Heterozygous {
			second = quote(string(p.Second))
		}
		parts[i] = "(" + quote(string(p.First)) + ", " + second + ")"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
