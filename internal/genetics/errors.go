package genetics

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when two gametes (or genotypes) carry a
	// different number of loci and cannot be paired.
	ErrLengthMismatch = errors.New("locus count mismatch")

	// ErrOddLength is returned by strict callers for genotypes with a dangling
	// allele symbol.
	ErrOddLength = errors.New("genotype has odd length")

	// ErrTooManyLoci is returned when the number of heterozygous loci is too
	// large to enumerate.
	ErrTooManyLoci = errors.New("too many heterozygous loci")
)

func lengthMismatch(a, b Parent) error {
	return fmt.Errorf("%w: %q has %d loci, %q has %d", ErrLengthMismatch, a.Genotype, a.Loci(), b.Genotype, b.Loci())
}
