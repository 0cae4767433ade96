package writers

import (
	"bytes"
	"strings"
	"testing"
)

func tableLines(t *testing.T, g1, g2 string, opt Options) [][]string {
	t.Helper()
	var b bytes.Buffer
	if err := WriteTable(&b, mustCross(t, g1, g2), opt); err != nil {
		t.Fatal(err)
	}
	var rows [][]string
	for _, ln := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		rows = append(rows, strings.Fields(ln))
	}
	return rows
}

func TestWriteTableHeaderAndRows(t *testing.T) {
	rows := tableLines(t, "Aa", "Aa", Options{Header: true})
	if len(rows) != 4 {
		t.Fatalf("want header + 3 rows, got %v", rows)
	}
	if strings.Join(rows[0], " ") != "GENOTYPE COUNT PROBABILITY" {
		t.Fatalf("header %v", rows[0])
	}
	if strings.Join(rows[2], " ") != "Aa 2 0.5000" {
		t.Fatalf("row %v", rows[2])
	}
}

func TestWriteTableNoHeaderEmptyKey(t *testing.T) {
	rows := tableLines(t, "", "", Options{})
	if len(rows) != 1 || strings.Join(rows[0], " ") != "- 1 1.0000" {
		t.Fatalf("rows %v", rows)
	}
}

func TestWriteTablePhenotypes(t *testing.T) {
	rows := tableLines(t, "Aa", "Aa", Options{Header: true, Phenotypes: true})
	// 4 genotype lines, blank, 3 phenotype lines
	if len(rows) != 8 || len(rows[4]) != 0 || rows[5][0] != "PHENOTYPE" {
		t.Fatalf("rows %v", rows)
	}
	if strings.Join(rows[6], " ") != "A 3 0.7500" {
		t.Fatalf("row %v", rows[6])
	}
}
