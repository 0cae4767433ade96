// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"punnett/internal/cliutil"
	"punnett/internal/version"
)

// ErrUsage marks command-line mistakes (wrong argument count, bad flags).
var ErrUsage = errors.New("usage error")

// Output formats accepted by --output.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
	OutputTable = "table"
	OutputGrid  = "grid"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Genotype1 string
	Genotype2 string

	// Output
	Output     string
	Phenotypes bool
	Sort       bool
	Header     bool // true unless --no-header

	// Policy
	Strict bool

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs.Output(), fs) }
	return fs
}

// PrintUsage writes the help text for fs to out.
func PrintUsage(out io.Writer, fs *flag.FlagSet) {
	def := func(name string) string {
		if f := fs.Lookup(name); f != nil {
			return f.DefValue
		}
		return ""
	}
	name := fs.Name()
	fmt.Fprintf(out, "USAGE: %s <Genome1> <Genome2>\n\n", name)
	fmt.Fprintln(out, "Crosses two diploid genotypes (two symbols per locus) and reports every")
	fmt.Fprintln(out, "offspring genotype with its frequency.")
	fmt.Fprintf(out, "Version: %s\n", version.Version)

	fmt.Fprintln(out, "\nExample:")
	fmt.Fprintf(out, "  %s AaBb AaBb\n", name)

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string   Output: text | json | jsonl | table | grid [%s]\n", def("output"))
	fmt.Fprintf(out, "      --phenotypes      Report phenotype classes and ratios [%s]\n", def("phenotypes"))
	fmt.Fprintf(out, "      --sort            Order classes by value, not first appearance [%s]\n", def("sort"))
	fmt.Fprintf(out, "      --no-header       Suppress the table header row [%s]\n", def("no-header"))

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintf(out, "      --strict          Reject odd-length genotypes instead of dropping the last symbol [%s]\n", def("strict"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet           Suppress warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version         Print version and exit")
	fmt.Fprintln(out, "  -h, --help            Show this help and exit")
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the two genotypes.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", OutputText, "output: text | json | jsonl | table | grid [text]")
	fs.StringVar(&opt.Output, "o", OutputText, "alias of --output")
	fs.BoolVar(&opt.Phenotypes, "phenotypes", false, "report phenotype classes [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "order classes by value [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress table header [false]")
	fs.BoolVar(&opt.Strict, "strict", false, "reject odd-length genotypes [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if len(posArgs) != 2 {
		return opt, fmt.Errorf("%w: expected 2 genotypes, got %d", ErrUsage, len(posArgs))
	}
	opt.Genotype1, opt.Genotype2 = posArgs[0], posArgs[1]

	switch opt.Output {
	case OutputText, OutputJSON, OutputJSONL, OutputTable, OutputGrid:
	default:
		return opt, fmt.Errorf("%w: invalid --output %q", ErrUsage, opt.Output)
	}
	return opt, nil
}
