// internal/writers/json.go
package writers

import (
	"io"

	"punnett/internal/genetics"
	"punnett/internal/jsonutil"
	"punnett/pkg/api"
)

func init() {
	Register("json", WriteJSON)
	Register("jsonl", WriteJSONL)
}

// ToAPICross converts a cross to the stable wire schema (v1).
func ToAPICross(c genetics.Cross, opt Options) api.CrossV1 {
	v := api.CrossV1{
		Parents:   make([]api.ParentV1, 0, len(c.Parents)),
		Children:  append([]string{}, c.Children...),
		Total:     c.Genotypes.Total(),
		Genotypes: toAPIClasses("", c.Genotypes, opt.Sort),
	}
	for _, p := range c.Parents {
		v.Parents = append(v.Parents, toAPIParent(p))
	}
	if opt.Phenotypes {
		v.Phenotypes = toAPIClasses("", c.Phenotypes, opt.Sort)
		v.GenotypeRatio = c.Genotypes.Ratio(opt.Sort)
		v.PhenotypeRatio = c.Phenotypes.Ratio(opt.Sort)
	}
	return v
}

func toAPIParent(p genetics.Parent) api.ParentV1 {
	v := api.ParentV1{
		Genotype: p.Genotype,
		Genes:    append([]string{}, p.Genes...),
		Alleles:  make([]api.AlleleV1, 0, len(p.Alleles)),
		Alphabet: genetics.Alphabet(p.Alleles),
		Gametes:  append([]string{}, p.Gametes...),
	}
	for _, a := range p.Alleles {
		al := api.AlleleV1{First: string(a.First)}
		if a.Heterozygous {
			al.Second = string(a.Second)
		}
		v.Alleles = append(v.Alleles, al)
	}
	return v
}

func toAPIClasses(kind string, f *genetics.Frequencies, sorted bool) []api.ClassV1 {
	classes := f.Classes(sorted)
	probs := f.Probabilities(sorted)
	out := make([]api.ClassV1, 0, len(classes))
	for i, c := range classes {
		out = append(out, api.ClassV1{Kind: kind, Value: c.Key, Count: c.Count, Probability: probs[i]})
	}
	return out
}

// WriteJSON writes the whole cross as one indented JSON document (v1).
func WriteJSON(w io.Writer, c genetics.Cross, opt Options) error {
	return jsonutil.EncodePretty(w, ToAPICross(c, opt))
}

// WriteJSONL writes one line per genotype class, followed by one line per
// phenotype class when requested.
func WriteJSONL(w io.Writer, c genetics.Cross, opt Options) error {
	rows := toAPIClasses("genotype", c.Genotypes, opt.Sort)
	if opt.Phenotypes {
		rows = append(rows, toAPIClasses("phenotype", c.Phenotypes, opt.Sort)...)
	}
	return jsonutil.EncodeLines(w, rows)
}
