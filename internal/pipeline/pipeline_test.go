package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"punnett/internal/cmdutil"
	"punnett/internal/genetics"
)

func TestRunMonohybrid(t *testing.T) {
	c, err := Run(context.Background(), Config{}, "Aa", "Aa")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if c.Genotypes.Total() != 4 || c.Genotypes.Count("Aa") != 2 {
		t.Fatalf("unexpected tally: %v", c.Genotypes.Classes(false))
	}
}

func TestRunLengthMismatch(t *testing.T) {
	_, err := Run(context.Background(), Config{}, "AaBb", "Aa")
	if !errors.Is(err, genetics.ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
}

func TestRunOddLengthLenientWarns(t *testing.T) {
	var logBuf bytes.Buffer
	c, err := Run(context.Background(), Config{Logger: cmdutil.NewLogger(&logBuf, false)}, "AaB", "Aa")
	if err != nil {
		t.Fatalf("lenient run should succeed: %v", err)
	}
	if got := c.Parents[0].Genes; len(got) != 1 || got[0] != "Aa" {
		t.Fatalf("dangling allele not dropped: %q", got)
	}
	if s := logBuf.String(); !strings.Contains(s, "WARN") || !strings.Contains(s, "odd-length") {
		t.Fatalf("expected odd-length warning, got %q", s)
	}
}

func TestRunOddLengthQuiet(t *testing.T) {
	var logBuf bytes.Buffer
	if _, err := Run(context.Background(), Config{Logger: cmdutil.NewLogger(&logBuf, true)}, "Aa", "AaB"); err != nil {
		t.Fatal(err)
	}
	if logBuf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", logBuf.String())
	}
}

func TestRunOddLengthStrict(t *testing.T) {
	_, err := Run(context.Background(), Config{Strict: true}, "Aa", "AaB")
	if !errors.Is(err, genetics.ErrOddLength) {
		t.Fatalf("want ErrOddLength, got %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Config{}, "Aa", "Aa"); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
