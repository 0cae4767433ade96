// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"punnett/internal/genetics"
)

// Config controls a single cross.
type Config struct {
	Strict bool        // odd-length genotypes are errors instead of warnings
	Logger *zap.Logger // nil means no logging
}

// Run crosses genotype1 with genotype2.
// Nothing is combined unless both parents derive cleanly and have the same
// number of loci.
func Run(ctx context.Context, cfg Config, genotype1, genotype2 string) (genetics.Cross, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var parents [2]genetics.Parent
	for i, g := range [2]string{genotype1, genotype2} {
		if genetics.IsOdd(g) {
			if cfg.Strict {
				return genetics.Cross{}, fmt.Errorf("genotype %d %q: %w", i+1, g, genetics.ErrOddLength)
			}
			log.Warn("odd-length genotype; trailing allele dropped",
				zap.Int("parent", i+1),
				zap.String("genotype", g),
			)
		}
		p, err := genetics.Derive(g)
		if err != nil {
			return genetics.Cross{}, fmt.Errorf("genotype %d %q: %w", i+1, g, err)
		}
		parents[i] = p
	}

	if err := ctx.Err(); err != nil {
		return genetics.Cross{}, err
	}
	return genetics.Breed(parents[0], parents[1])
}
