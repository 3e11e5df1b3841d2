package sway

import (
	"fmt"
	"math"
)

// Better reports whether row a dominates row b on t's goal columns, using
// continuous domination: each goal contributes an exponential loss on the
// weighted difference of normalized values, and the row that loses less
// when moving toward the other is better. A missing goal value normalizes
// to that goal's worst end.
func Better(t *Table, a, b *Row) (bool, error) {
	ys := t.Cols.Y
	if len(ys) == 0 {
		return false, ErrNoGoals
	}
	n := float64(len(ys))
	var s1, s2 float64
	for _, col := range ys {
		x := goalNorm(col, a.Cells[col.Pos()])
		y := goalNorm(col, b.Cells[col.Pos()])
		w := float64(col.W())
		s1 -= math.Exp(w * (x - y) / n)
		s2 -= math.Exp(w * (y - x) / n)
	}
	return s1/n < s2/n, nil
}

func goalNorm(col *Num, v Value) float64 {
	if f, ok := v.Float(); ok {
		return col.Norm(f)
	}
	if col.W() > 0 {
		return 0
	}
	return 1
}

// Best returns the row in rows that is Better than every row it was
// compared against, scanning left to right. rows must be non-empty.
func Best(t *Table, rows []*Row) (*Row, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows to rank", ErrEmptyPartition)
	}
	best := rows[0]
	for _, r := range rows[1:] {
		ok, err := Better(t, r, best)
		if err != nil {
			return nil, err
		}
		if ok {
			best = r
		}
	}
	return best, nil
}
