package genetics

import "fmt"

// Combine joins two gametes locus by locus into an offspring genotype.
// Each locus is written with its two symbols in ascending order.
func Combine(a, b string) (string, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return "", fmt.Errorf("%w: gamete %q has %d loci, %q has %d", ErrLengthMismatch, a, len(ra), b, len(rb))
	}
	out := make([]rune, 0, 2*len(ra))
	for i := range ra {
		x, y := ra[i], rb[i]
		if y < x {
			x, y = y, x
		}
		out = append(out, x, y)
	}
	return string(out), nil
}

// Offspring combines every gamete of a with every gamete of b, row-major.
func Offspring(a, b []string) ([]string, error) {
	out := make([]string, 0, len(a)*len(b))
	for _, ga := range a {
		for _, gb := range b {
			child, err := Combine(ga, gb)
			if err != nil {
				return nil, err
			}
			out = append(out, child)
		}
	}
	return out, nil
}

// Tally counts genotypes by exact string equality.
func Tally(genotypes []string) *Frequencies {
	f := NewFrequencies()
	for _, g := range genotypes {
		f.Add(g)
	}
	return f
}
