package genetics

import "fmt"

// MaxHeterozygous bounds the heterozygous loci expanded by Gametes, and by
// Breed across both parents: 2^24 gametes or children at most.
const MaxHeterozygous = 24

// Gametes returns every gamete obtainable from alleles, one symbol per locus.
//
// Gametes are numbered 0..2^h-1 over the h heterozygous loci; the first
// heterozygous locus is the most significant bit and a set bit selects the
// second symbol. That is the same order as a depth-first walk that always
// tries the first symbol before the second.
func Gametes(alleles []AllelePair) ([]string, error) {
	het := make([]int, 0, len(alleles))
	for i, p := range alleles {
		if p.Heterozygous {
			het = append(het, i)
		}
	}
	h := len(het)
	if h > MaxHeterozygous {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyLoci, h, MaxHeterozygous)
	}

	n := uint64(1) << uint(h)
	out := make([]string, 0, n)
	buf := make([]rune, len(alleles))
	for i, p := range alleles {
		buf[i] = p.First
	}
	for mask := uint64(0); mask < n; mask++ {
		for j, locus := range het {
			if mask&(1<<uint(h-1-j)) != 0 {
				buf[locus] = alleles[locus].Second
			} else {
				buf[locus] = alleles[locus].First
			}
		}
		out = append(out, string(buf))
	}
	return out, nil
}
