// pkg/api/cross_v1.go
package api

// CrossV1 is the stable JSON schema for one cross.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CrossV1 struct {
	Parents        []ParentV1 `json:"parents"`
	Children       []string   `json:"children"`
	Total          int        `json:"total"`
	Genotypes      []ClassV1  `json:"genotypes"`
	Phenotypes     []ClassV1  `json:"phenotypes,omitempty"`
	GenotypeRatio  string     `json:"genotype_ratio,omitempty"`
	PhenotypeRatio string     `json:"phenotype_ratio,omitempty"`
}

// ParentV1 is the derivation of one input genotype.
type ParentV1 struct {
	Genotype string     `json:"genotype"`
	Genes    []string   `json:"genes"`
	Alleles  []AlleleV1 `json:"alleles"`
	Alphabet []string   `json:"alphabet"`
	Gametes  []string   `json:"gametes"`
}

// AlleleV1 is one locus. Second is empty for homozygous loci.
type AlleleV1 struct {
	First  string `json:"first"`
	Second string `json:"second,omitempty"`
}

// ClassV1 is one distinct genotype or phenotype with its count.
// JSONL output writes one ClassV1 per line, with Kind set.
type ClassV1 struct {
	Kind        string  `json:"kind,omitempty"` // "genotype" | "phenotype"
	Value       string  `json:"value"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}
