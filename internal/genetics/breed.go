package genetics

import "fmt"

// Parent is the derivation of one genotype down to its gametes.
type Parent struct {
	Genotype string
	Genes    []string
	Alleles  []AllelePair
	Gametes  []string
}

// Loci is the number of complete loci of the parent.
func (p Parent) Loci() int { return len(p.Genes) }

// Derive runs the splitter, resolver and enumerator over genotype.
func Derive(genotype string) (Parent, error) {
	genes := Genes(genotype)
	alleles := Alleles(genes)
	gametes, err := Gametes(alleles)
	if err != nil {
		return Parent{}, err
	}
	return Parent{Genotype: genotype, Genes: genes, Alleles: alleles, Gametes: gametes}, nil
}

// Cross is the full result of crossing two parents.
type Cross struct {
	Parents    [2]Parent
	Children   []string
	Genotypes  *Frequencies
	Phenotypes *Frequencies
}

// Breed crosses two derived parents. Both must have the same number of loci.
func Breed(a, b Parent) (Cross, error) {
	if a.Loci() != b.Loci() {
		return Cross{}, lengthMismatch(a, b)
	}
	if h := HeterozygousCount(a.Alleles) + HeterozygousCount(b.Alleles); h > MaxHeterozygous {
		return Cross{}, fmt.Errorf("%w: %d across both parents (max %d)", ErrTooManyLoci, h, MaxHeterozygous)
	}
	children, err := Offspring(a.Gametes, b.Gametes)
	if err != nil {
		return Cross{}, err
	}
	return Cross{
		Parents:    [2]Parent{a, b},
		Children:   children,
		Genotypes:  Tally(children),
		Phenotypes: Phenotypes(children),
	}, nil
}
