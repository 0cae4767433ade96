package genetics

import "unicode/utf8"

// Genes splits genotype into consecutive two-character loci.
// A trailing unpaired symbol is dropped.
func Genes(genotype string) []string {
	rs := []rune(genotype)
	genes := make([]string, 0, len(rs)/2)
	for i := 0; i+1 < len(rs); i += 2 {
		genes = append(genes, string(rs[i:i+2]))
	}
	return genes
}

// IsOdd reports whether genotype has an unpaired trailing symbol.
func IsOdd(genotype string) bool {
	return utf8.RuneCountInString(genotype)%2 == 1
}
