package cliutil

import (
	"flag"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("strict", false, "")
	fs.String("output", "text", "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	cases := []struct {
		in         []string
		flags, pos []string
	}{
		{[]string{"--strict", "Aa", "--", "-x"}, []string{"--strict"}, []string{"Aa", "-x"}},
		{[]string{"Aa", "--output", "json", "aa"}, []string{"--output", "json"}, []string{"Aa", "aa"}},
		{[]string{"--output=table", "", ""}, []string{"--output=table"}, []string{"", ""}},
		{[]string{"-", "Aa"}, nil, []string{"-", "Aa"}},
	}
	for _, c := range cases {
		f, p := SplitFlagsAndPositionals(newFS(), c.in)
		if !reflect.DeepEqual(f, c.flags) || !reflect.DeepEqual(p, c.pos) {
			t.Fatalf("%q: got %q / %q want %q / %q", c.in, f, p, c.flags, c.pos)
		}
	}
}

func TestBoolFlags(t *testing.T) {
	m := BoolFlags(newFS())
	if !m["strict"] || m["output"] {
		t.Fatalf("bool flags: %v", m)
	}
}
