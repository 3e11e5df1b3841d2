package sway

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Halves is the result of one Half.
type Halves struct {
	Left, Right []*Row
	// A and B are the anchors, Mid the last row of Left.
	A, B, Mid *Row
	// C is the distance between A and B.
	C float64
}

// Half splits rows in two along the line between two distant anchors.
//
// Anchor A is above if non-nil, else a random row of a sample of at most
// cfg.Sample rows; anchor B is the cfg.Far percentile neighbor of A within
// the sample. Every row is projected onto A-B with Cosine (its X and Y are
// set), rows are stably sorted by X, and the first half goes Left. Distances
// use t's feature columns, so rows may be any subset of t's rows.
func Half(t *Table, rows []*Row, above *Row, rng *Rand, cfg Config) (*Halves, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: half needs at least 2 rows, got %d", ErrEmptyPartition, len(rows))
	}
	m := cfg.metric()
	dist := func(a, b *Row) float64 { return m.Distance(t.Cols.X, a, b) }

	some := sample(rows, cfg.Sample, rng)
	A := above
	if A == nil {
		A = rng.Any(some)
	}
	B := Far(t, A, some, cfg.Far, cfg).Row
	c := dist(A, B)

	sorted := make([]*Row, len(rows))
	copy(sorted, rows)
	for _, r := range sorted {
		r.X, r.Y = Cosine(dist(r, A), dist(r, B), c)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	n := len(sorted) / 2
	return &Halves{
		Left:  sorted[:n:n],
		Right: sorted[n:],
		A:     A,
		B:     B,
		Mid:   sorted[n-1],
		C:     c,
	}, nil
}

func sample(rows []*Row, n int, rng *Rand) []*Row {
	if len(rows) <= n {
		return rows
	}
	return rng.Many(rows, n)
}

// leafSize is the largest row count that is not split further.
func leafSize(n int, cfg Config) float64 {
	return math.Max(2, math.Pow(float64(n), cfg.Min))
}

func prepare(t *Table, cfg *Config) error {
	applyDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if t.Len() == 0 {
		return ErrNoRows
	}
	return nil
}

// Cluster recursively halves t's rows into a binary tree. Each node holds a
// clone of the rows that reached it; every row of t lands in exactly one
// leaf. Children reuse their parent's anchors (Left starts from A, Right
// from B) so only the root anchor is random.
func Cluster(t *Table, rng *Rand, cfg Config) (Node, error) {
	if err := prepare(t, &cfg); err != nil {
		return nil, err
	}
	b := &builder{t: t, rng: rng, cfg: cfg, stop: leafSize(t.Len(), cfg)}
	return b.cluster(t.Rows, nil, 0)
}

// Sway descends toward the rows that best satisfy t's goals. At each split
// the half whose anchor is Better is kept and split again; the other half
// becomes a Leaf that is never explored. The root anchor is the Better-best
// row of a sample, and each kept half starts from its winning anchor.
func Sway(t *Table, rng *Rand, cfg Config) (Node, error) {
	if err := prepare(t, &cfg); err != nil {
		return nil, err
	}
	if len(t.Cols.Y) == 0 {
		return nil, ErrNoGoals
	}
	best, err := Best(t, sample(t.Rows, cfg.Sample, rng))
	if err != nil {
		return nil, err
	}
	b := &builder{t: t, rng: rng, cfg: cfg, stop: leafSize(t.Len(), cfg)}
	return b.sway(t.Rows, best, 0)
}

type builder struct {
	t    *Table
	rng  *Rand
	cfg  Config
	stop float64
}

func (b *builder) leaf(rows []*Row) (*Leaf, error) {
	data, err := b.t.Clone(rows)
	if err != nil {
		return nil, err
	}
	return &Leaf{Data: data}, nil
}

func (b *builder) split(rows []*Row, above *Row, depth int) (*Split, *Halves, error) {
	h, err := Half(b.t, rows, above, b.rng, b.cfg)
	if err != nil {
		return nil, nil, err
	}
	data, err := b.t.Clone(rows)
	if err != nil {
		return nil, nil, err
	}
	b.cfg.Logger.Debug("split",
		slog.Int("depth", depth),
		slog.Int("rows", len(rows)),
		slog.Int("left", len(h.Left)),
		slog.Int("right", len(h.Right)),
		slog.Float64("c", h.C))
	return &Split{Data: data, A: h.A, B: h.B, Mid: h.Mid, C: h.C}, h, nil
}

func (b *builder) cluster(rows []*Row, above *Row, depth int) (Node, error) {
	if float64(len(rows)) <= b.stop {
		return b.leaf(rows)
	}
	s, h, err := b.split(rows, above, depth)
	if err != nil {
		return nil, err
	}
	if s.Left, err = b.cluster(h.Left, h.A, depth+1); err != nil {
		return nil, err
	}
	if s.Right, err = b.cluster(h.Right, h.B, depth+1); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *builder) sway(rows []*Row, above *Row, depth int) (Node, error) {
	if float64(len(rows)) <= b.stop {
		return b.leaf(rows)
	}
	s, h, err := b.split(rows, above, depth)
	if err != nil {
		return nil, err
	}
	keep, drop := h.Left, h.Right
	worse, err := Better(b.t, h.B, h.A)
	if err != nil {
		return nil, err
	}
	if worse {
		keep, drop = drop, keep
		s.A, s.B = s.B, s.A
	}
	b.cfg.Logger.Debug("prune",
		slog.Int("depth", depth),
		slog.Int("kept", len(keep)),
		slog.Int("dropped", len(drop)))
	if s.Left, err = b.sway(keep, s.A, depth+1); err != nil {
		return nil, err
	}
	if s.Right, err = b.leaf(drop); err != nil {
		return nil, err
	}
	return s, nil
}
