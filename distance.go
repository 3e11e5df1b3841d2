package sway

import "math"

// Metric combines per-column distances between two rows into one distance.
// cols are the columns to compare; each contributes Column.Dist in [0, 1].
type Metric interface {
	Distance(cols []Column, a, b *Row) float64
}

// MetricFunc adapts a plain function into a Metric.
type MetricFunc func(cols []Column, a, b *Row) float64

func (f MetricFunc) Distance(cols []Column, a, b *Row) float64 { return f(cols, a, b) }

// MinkowskiMetric averages the P-th powers of the per-column distances and
// takes the P-th root, so the result stays in [0, 1] for any number of
// columns. P must be >= 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(cols []Column, a, b *Row) float64 {
	if len(cols) == 0 {
		return 0
	}
	return math.Pow(m.rawSum(cols, a, b)/float64(len(cols)), 1.0/m.P)
}

func (m MinkowskiMetric) rawSum(cols []Column, a, b *Row) float64 {
	var sum float64
	for _, c := range cols {
		d := c.Dist(a.Cells[c.Pos()], b.Cells[c.Pos()])
		sum += math.Pow(d, m.P)
	}
	return sum
}

// EuclideanMetric is MinkowskiMetric with P = 2.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(cols []Column, a, b *Row) float64 {
	return MinkowskiMetric{P: 2}.Distance(cols, a, b)
}

// ManhattanMetric is MinkowskiMetric with P = 1.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(cols []Column, a, b *Row) float64 {
	return MinkowskiMetric{P: 1}.Distance(cols, a, b)
}

// Dist is the distance between a and b over t's feature columns.
func Dist(t *Table, a, b *Row, cfg Config) float64 {
	applyDefaults(&cfg)
	return cfg.metric().Distance(t.Cols.X, a, b)
}

// Cosine projects a point onto the line between two anchors, given its
// distances a and b to them and the anchors' separation c. x is the
// position along the line clamped to [0, 1]; y is the perpendicular offset.
func Cosine(a, b, c float64) (x, y float64) {
	if c == 0 {
		return 0, a
	}
	x1 := (a*a + c*c - b*b) / (2 * c)
	x = clamp01(x1)
	y = math.Sqrt(math.Abs(a*a - x*x))
	return x, y
}
