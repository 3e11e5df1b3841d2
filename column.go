package sway

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Column accumulates statistics for one attribute. Both variants ignore
// missing values in Add and normalize Dist into [0, 1].
type Column interface {
	// Pos is the column's index in each row.
	Pos() int
	Name() string
	// Count is the number of non-missing values added.
	Count() int
	Add(v Value)
	// Mid is the central tendency: mean for Num, mode for Sym.
	Mid() (Value, error)
	// Div is the spread: sample standard deviation for Num, entropy in
	// bits for Sym.
	Div() (float64, error)
	// Dist is the distance between two cells of this column.
	Dist(a, b Value) float64
}

// Num summarizes a numeric column with Welford's online mean/variance.
type Num struct {
	pos  int
	name string
	n    int
	sum  float64
	mu   float64
	m2   float64
	lo   float64
	hi   float64
	w    int
}

// NewNum returns an empty numeric column.
func NewNum(pos int, name string) *Num {
	return &Num{pos: pos, name: name, lo: math.Inf(1), hi: math.Inf(-1)}
}

func (c *Num) Pos() int      { return c.pos }
func (c *Num) Name() string  { return c.name }
func (c *Num) Count() int    { return c.n }
func (c *Num) Sum() float64  { return c.sum }
func (c *Num) Lo() float64   { return c.lo }
func (c *Num) Hi() float64   { return c.hi }
func (c *Num) Mean() float64 { return c.mu }

// W is +1 for a goal to maximize, -1 for one to minimize and 0 otherwise.
func (c *Num) W() int { return c.w }

// Add folds v into the running statistics. Missing and symbolic values
// are ignored.
func (c *Num) Add(v Value) {
	x, ok := v.Float()
	if !ok {
		return
	}
	c.n++
	c.sum += x
	d := x - c.mu
	c.mu += d / float64(c.n)
	c.m2 += d * (x - c.mu)
	c.lo = math.Min(c.lo, x)
	c.hi = math.Max(c.hi, x)
}

func (c *Num) Mid() (Value, error) {
	if c.n == 0 {
		return Missing, fmt.Errorf("%w: %q", ErrEmptyColumn, c.name)
	}
	return Number(c.mu), nil
}

func (c *Num) Div() (float64, error) {
	if c.n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrEmptyColumn, c.name)
	}
	if c.n < 2 {
		return 0, nil
	}
	return math.Sqrt(c.m2 / float64(c.n-1)), nil
}

// Norm maps x into [0, 1] using the observed bounds. Values outside the
// bounds are clamped.
func (c *Num) Norm(x float64) float64 {
	if c.n == 0 {
		return 0
	}
	return clamp01((x - c.lo) / (c.hi - c.lo + 1e-32))
}

// Dist is |norm(a) - norm(b)|. A missing operand takes whichever bound lies
// farther from the other operand; two missing operands are maximally apart.
func (c *Num) Dist(a, b Value) float64 {
	x, okA := a.Float()
	y, okB := b.Float()
	switch {
	case !okA && !okB:
		return 1
	case !okA:
		y = c.Norm(y)
		x = farEnd(y)
	case !okB:
		x = c.Norm(x)
		y = farEnd(x)
	default:
		x, y = c.Norm(x), c.Norm(y)
	}
	return math.Abs(x - y)
}

func farEnd(x float64) float64 {
	if x < 0.5 {
		return 1
	}
	return 0
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// Sym summarizes a symbolic column by symbol counts.
type Sym struct {
	pos    int
	name   string
	n      int
	counts map[string]int
	order  []string
	mode   string
	most   int
}

// NewSym returns an empty symbolic column.
func NewSym(pos int, name string) *Sym {
	return &Sym{pos: pos, name: name, counts: map[string]int{}}
}

func (c *Sym) Pos() int     { return c.pos }
func (c *Sym) Name() string { return c.name }
func (c *Sym) Count() int   { return c.n }

// Tally returns how often s has been seen.
func (c *Sym) Tally(s string) int { return c.counts[s] }

// Add counts v. Numbers built in code are counted by their text form.
func (c *Sym) Add(v Value) {
	if v.IsMissing() {
		return
	}
	s := v.String()
	c.n++
	if _, seen := c.counts[s]; !seen {
		c.order = append(c.order, s)
	}
	c.counts[s]++
	if c.counts[s] > c.most {
		c.most, c.mode = c.counts[s], s
	}
}

func (c *Sym) Mid() (Value, error) {
	if c.n == 0 {
		return Missing, fmt.Errorf("%w: %q", ErrEmptyColumn, c.name)
	}
	return Symbol(c.mode), nil
}

func (c *Sym) Div() (float64, error) {
	if c.n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrEmptyColumn, c.name)
	}
	p := make([]float64, len(c.order))
	for i, s := range c.order {
		p[i] = float64(c.counts[s]) / float64(c.n)
	}
	return stat.Entropy(p) / math.Ln2, nil
}

func (c *Sym) Dist(a, b Value) float64 {
	if a.IsMissing() || b.IsMissing() || a.String() != b.String() {
		return 1
	}
	return 0
}
