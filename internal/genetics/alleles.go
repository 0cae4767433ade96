package genetics

import "github.com/campoy/unique"

// AllelePair holds the distinct allele symbols of one locus.
// Second is meaningful only when Heterozygous is set.
type AllelePair struct {
	First        rune
	Second       rune
	Heterozygous bool
}

// Symbols returns the distinct symbols of the pair, First first.
func (p AllelePair) Symbols() []rune {
	if p.Heterozygous {
		return []rune{p.First, p.Second}
	}
	return []rune{p.First}
}

// Alleles resolves each gene to its allele pair, in gene order.
func Alleles(genes []string) []AllelePair {
	out := make([]AllelePair, 0, len(genes))
	for _, g := range genes {
		rs := []rune(g)
		if len(rs) == 0 {
			continue
		}
		p := AllelePair{First: rs[0]}
		if len(rs) > 1 && rs[1] != rs[0] {
			p.Second = rs[1]
			p.Heterozygous = true
		}
		out = append(out, p)
	}
	return out
}

// HeterozygousCount returns the number of heterozygous loci.
func HeterozygousCount(alleles []AllelePair) int {
	n := 0
	for _, p := range alleles {
		if p.Heterozygous {
			n++
		}
	}
	return n
}

// Alphabet returns the sorted distinct allele symbols used by the pairs.
func Alphabet(alleles []AllelePair) []string {
	syms := []string{}
	for _, p := range alleles {
		for _, r := range p.Symbols() {
			syms = append(syms, string(r))
		}
	}
	unique.Slice(&syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
