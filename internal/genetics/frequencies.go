package genetics

import (
	"strconv"
	"strings"

	"github.com/campoy/unique"
	"gonum.org/v1/gonum/floats"
)

// Class is one distinct genotype (or phenotype) and its count.
type Class struct {
	Key   string
	Count int
}

// Frequencies counts keys and remembers the order they were first seen in.
type Frequencies struct {
	order  []string
	counts map[string]int
	total  int
}

func NewFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[string]int)}
}

// Add increments the count of key.
func (f *Frequencies) Add(key string) {
	if _, ok := f.counts[key]; !ok {
		f.order = append(f.order, key)
	}
	f.counts[key]++
	f.total++
}

// Count returns the count of key (0 if never added).
func (f *Frequencies) Count(key string) int { return f.counts[key] }

// Len is the number of distinct keys.
func (f *Frequencies) Len() int { return len(f.order) }

// Total is the sum of all counts.
func (f *Frequencies) Total() int { return f.total }

// Keys returns the distinct keys in first-insertion order.
func (f *Frequencies) Keys() []string {
	return append([]string(nil), f.order...)
}

// SortedKeys returns the distinct keys in ascending byte order.
func (f *Frequencies) SortedKeys() []string {
	keys := f.Keys()
	unique.Slice(&keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Classes returns key/count pairs, sorted by key when sorted is set and in
// first-insertion order otherwise.
func (f *Frequencies) Classes(sorted bool) []Class {
	keys := f.order
	if sorted {
		keys = f.SortedKeys()
	}
	out := make([]Class, 0, len(keys))
	for _, k := range keys {
		out = append(out, Class{Key: k, Count: f.counts[k]})
	}
	return out
}

// Probabilities returns count/total for each class, parallel to Classes(sorted).
func (f *Frequencies) Probabilities(sorted bool) []float64 {
	classes := f.Classes(sorted)
	p := make([]float64, len(classes))
	for i, c := range classes {
		p[i] = float64(c.Count)
	}
	if sum := floats.Sum(p); sum > 0 {
		floats.Scale(1/sum, p)
	}
	return p
}

// Ratio renders the counts of Classes(sorted) reduced by their common divisor,
// e.g. "9:3:3:1".
func (f *Frequencies) Ratio(sorted bool) string {
	classes := f.Classes(sorted)
	d := 0
	for _, c := range classes {
		d = gcd(d, c.Count)
	}
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		n := c.Count
		if d > 1 {
			n /= d
		}
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ":")
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
