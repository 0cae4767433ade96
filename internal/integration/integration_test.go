// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"testing"

	"punnett/internal/app"
	"punnett/pkg/api"
)

func runJSON(t *testing.T, args ...string) api.CrossV1 {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(append([]string{"--output", "json"}, args...), &out, &errBuf)
	if code != 0 {
		t.Fatalf("run %q: exit %d, err=%s", args, code, errBuf.String())
	}
	var v api.CrossV1
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func counts(v api.CrossV1) map[string]int {
	m := map[string]int{}
	for _, c := range v.Genotypes {
		m[c.Value] = c.Count
	}
	return m
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name   string
		g1, g2 string
		want   map[string]int
	}{
		{"dihybrid", "AaBb", "AaBb", map[string]int{
			"AABB": 1, "AABb": 2, "AaBB": 2, "AaBb": 4, "AAbb": 1,
			"aaBB": 1, "Aabb": 2, "aaBb": 2, "aabb": 1,
		}},
		{"homozygous", "AABB", "aabb", map[string]int{"AaBb": 1}},
		{"monohybrid", "Aa", "Aa", map[string]int{"AA": 1, "Aa": 2, "aa": 1}},
		{"empty", "", "", map[string]int{"": 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := runJSON(t, c.g1, c.g2)
			got := counts(v)
			if len(got) != len(c.want) {
				t.Fatalf("classes %v want %v", got, c.want)
			}
			sum := 0
			for k, n := range c.want {
				if got[k] != n {
					t.Fatalf("%q: %d want %d", k, got[k], n)
				}
				sum += n
			}
			if v.Total != sum || len(v.Children) != sum {
				t.Fatalf("total %d children %d want %d", v.Total, len(v.Children), sum)
			}
			if want := len(v.Parents[0].Gametes) * len(v.Parents[1].Gametes); sum != want {
				t.Fatalf("sum %d != |A|x|B| %d", sum, want)
			}
		})
	}
}

func TestTextAndJSONAgree(t *testing.T) {
	v := runJSON(t, "--sort", "AaBbCc", "aaBbcc")
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--sort", "AaBbCc", "aaBbcc"}, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d: %s", code, errBuf.String())
	}
	line := "Unique genotypes: "
	for i, c := range v.Genotypes {
		if i > 0 {
			line += " : "
		}
		line += jsonCount(c) + c.Value
	}
	if !bytes.Contains(out.Bytes(), []byte(line+"\n")) {
		t.Fatalf("text report lacks %q:\n%s", line, out.String())
	}
}

func jsonCount(c api.ClassV1) string {
	b, _ := json.Marshal(c.Count)
	return string(b)
}
