// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"punnett/internal/genetics"
)

// Options are the presentation switches shared by all formats.
type Options struct {
	Sort       bool // order classes by value instead of first appearance
	Header     bool // table header row
	Phenotypes bool // include phenotype classes and ratios
}

// Func renders one cross to w.
type Func func(w io.Writer, c genetics.Cross, opt Options) error

// Writer registry (format → handler). Formats register themselves in init().
var registry = map[string]Func{}

// Register installs fn for format (last wins).
func Register(format string, fn Func) { registry[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, c genetics.Cross, opt Options) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, c, opt)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
