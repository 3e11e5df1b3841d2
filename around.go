package sway

import (
	"iter"
	"sort"
)

// Neighbor is one row and its distance from a reference row.
type Neighbor struct {
	Row  *Row
	Dist float64
}

// Neighbors returns every row in rows paired with its distance from row,
// sorted by ascending distance. Ties keep the order of rows.
func Neighbors(t *Table, row *Row, rows []*Row, cfg Config) []Neighbor {
	applyDefaults(&cfg)
	m := cfg.metric()
	out := make([]Neighbor, len(rows))
	for i, r := range rows {
		out[i] = Neighbor{Row: r, Dist: m.Distance(t.Cols.X, row, r)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	return out
}

// Around yields (row, distance) for every row of t, nearest first. Each
// range computes the distances afresh, so the sequence can be ranged over
// any number of times, from any goroutine, and reflects rows added since.
// It never modifies t.
func Around(t *Table, row *Row, cfg Config) iter.Seq2[*Row, float64] {
	return func(yield func(*Row, float64) bool) {
		for _, n := range Neighbors(t, row, t.Rows, cfg) {
			if !yield(n.Row, n.Dist) {
				return
			}
		}
	}
}

// Far returns the row of rows at the given fraction of the distance-sorted
// neighbor list of row, e.g. 0.95 picks a row near the far end without the
// outliers at the very end. rows must be non-empty.
func Far(t *Table, row *Row, rows []*Row, fraction float64, cfg Config) Neighbor {
	ns := Neighbors(t, row, rows, cfg)
	i := int(fraction * float64(len(ns)))
	i = min(i, len(ns)-1)
	i = max(i, 0)
	return ns[i]
}
