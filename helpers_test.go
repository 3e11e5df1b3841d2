package sway

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const floatTol = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

var auto93Header = []string{"Clndrs", "Volume", "HpX", "Lbs-", "Acc+", "Model", "origin", "Mpg+"}

// auto93Records generates n rows shaped like the classic auto93 dataset:
// heavier, bigger-engined cars get worse mileage and acceleration. A few
// cells are missing. Deterministic for a given n.
func auto93Records(n int) [][]string {
	rng := rand.New(rand.NewSource(42))
	recs := [][]string{auto93Header}
	for i := 0; i < n; i++ {
		cyl := []int{4, 4, 4, 6, 8}[rng.Intn(5)]
		vol := 70 + float64(cyl-4)*60 + rng.Float64()*80
		hp := 40 + vol*0.4 + rng.Float64()*30
		lbs := 1600 + vol*7 + rng.Float64()*600
		acc := 25 - vol/40 + rng.Float64()*3
		model := 70 + rng.Intn(13)
		origin := 1 + rng.Intn(3)
		mpg := 10 * math.Round((50-vol/12+float64(model-70)*0.5+rng.Float64()*5)/10)

		cells := []string{
			strconv.Itoa(cyl),
			strconv.FormatFloat(math.Round(vol), 'f', -1, 64),
			strconv.FormatFloat(math.Round(hp), 'f', -1, 64),
			strconv.FormatFloat(math.Round(lbs), 'f', -1, 64),
			strconv.FormatFloat(math.Round(acc*10)/10, 'f', -1, 64),
			strconv.Itoa(model),
			strconv.Itoa(origin),
			strconv.FormatFloat(mpg, 'f', -1, 64),
		}
		if i%37 == 5 {
			cells[2] = "?"
		}
		if i%91 == 7 {
			cells[1] = "?"
		}
		recs = append(recs, cells)
	}
	return recs
}

func auto93(tb testing.TB) *Table {
	tb.Helper()
	tbl, err := FromRecords(auto93Records(398))
	if err != nil {
		tb.Fatalf("FromRecords: %v", err)
	}
	return tbl
}

// writeCSV writes records to a file in a temp dir and returns its path.
func writeCSV(tb testing.TB, recs [][]string) string {
	tb.Helper()
	var b strings.Builder
	for _, r := range recs {
		b.WriteString(strings.Join(r, ","))
		b.WriteByte('\n')
	}
	path := filepath.Join(tb.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}

// rowKey identifies a row by its cells.
func rowKey(r *Row) string {
	parts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func rowCounts(rows []*Row) map[string]int {
	m := map[string]int{}
	for _, r := range rows {
		m[rowKey(r)]++
	}
	return m
}

func mustTable(tb testing.TB, recs ...[]string) *Table {
	tb.Helper()
	tbl, err := FromRecords(recs)
	if err != nil {
		tb.Fatalf("FromRecords: %v", err)
	}
	return tbl
}
