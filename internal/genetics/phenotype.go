package genetics

// Phenotype returns the expressed symbol of each locus of an offspring
// genotype under complete dominance: the symbol that sorts first wins, so an
// uppercase allele masks its lowercase counterpart.
func Phenotype(genotype string) string {
	rs := []rune(genotype)
	out := make([]rune, 0, len(rs)/2)
	for i := 0; i+1 < len(rs); i += 2 {
		x, y := rs[i], rs[i+1]
		if y < x {
			x = y
		}
		out = append(out, x)
	}
	return string(out)
}

// Phenotypes tallies the phenotypes of genotypes.
func Phenotypes(genotypes []string) *Frequencies {
	f := NewFrequencies()
	for _, g := range genotypes {
		f.Add(Phenotype(g))
	}
	return f
}
