package main

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/TrevorS/sway"
)

// check is one named action. Actions that only print report ok=true unless
// they hit an error.
type check struct {
	name  string
	short string
	fn    func(a *app) (bool, error)
}

var checks = []check{
	{"the", "Show the resolved options", checkThe},
	{"rand", "Generator replays the same stream after a reseed", checkRand},
	{"sym", "Symbolic summary of a,a,a,a,b,b,c", checkSym},
	{"num", "Numeric summary of 1,1,1,1,2,2,3", checkNum},
	{"csv", "Count the cells of the data file", checkCSV},
	{"data", "Load the data file into a table", checkData},
	{"stats", "Mid and div of the goal and feature columns", checkStats},
	{"clone", "A clone keeps the rows and schema", checkClone},
	{"around", "Neighbors of the second row, every 50th", checkAround},
	{"half", "One split of the whole table", checkHalf},
	{"cluster", "Recursive bi-clustering tree", checkCluster},
	{"sway", "Recursive pruning toward the better half", checkSway},
	{"repcols", "Attribute table of the repertory grid", checkRepCols},
	{"reprows", "Item table of the repertory grid", checkRepRows},
	{"repgrid", "Cluster both views of the repertory grid", checkRepgrid},
}

func round(f float64, places int) float64 { return scalar.Round(f, places) }

func checkThe(a *app) (bool, error) {
	o := a.opts
	err := a.pr.Line("{file:%s grid:%s seed:%d p:%g far:%g min:%g sample:%d places:%d log_level:%s}",
		o.File, o.Grid, o.Seed, o.P, o.Far, o.Min, o.Sample, o.Places, o.LogLevel)
	return err == nil, err
}

func checkRand(a *app) (bool, error) {
	draw := func() float64 {
		a.rng.Reseed(a.opts.Seed)
		n := sway.NewNum(0, "rand")
		for range 1000 {
			n.Add(sway.Number(a.rng.Float(0, 1)))
		}
		return n.Mean()
	}
	m1, m2 := round(draw(), 10), round(draw(), 10)
	if err := a.pr.Line("%g %g", m1, m2); err != nil {
		return false, err
	}
	return m1 == m2 && round(m1, 1) == 0.5, nil
}

func checkSym(a *app) (bool, error) {
	s := sway.NewSym(0, "sym")
	for _, x := range []string{"a", "a", "a", "a", "b", "b", "c"} {
		s.Add(sway.Symbol(x))
	}
	mid, err := s.Mid()
	if err != nil {
		return false, err
	}
	div, err := s.Div()
	if err != nil {
		return false, err
	}
	if err := a.pr.Line("mid=%s div=%.3f", mid, div); err != nil {
		return false, err
	}
	return mid.String() == "a" && round(div, 3) == 1.379, nil
}

func checkNum(a *app) (bool, error) {
	n := sway.NewNum(0, "num")
	for _, x := range []float64{1, 1, 1, 1, 2, 2, 3} {
		n.Add(sway.Number(x))
	}
	div, err := n.Div()
	if err != nil {
		return false, err
	}
	if err := a.pr.Line("mid=%g div=%.3f", n.Mean(), div); err != nil {
		return false, err
	}
	return math.Abs(n.Mean()-11.0/7) < 1e-12 && round(div, 3) == 0.787, nil
}

func checkCSV(a *app) (bool, error) {
	var cells, records int
	err := sway.ReadCSVFile(a.opts.File, func(rec []string) error {
		cells += len(rec)
		records++
		return nil
	})
	if err != nil {
		return false, err
	}
	if err := a.pr.Line("%d cells in %d records", cells, records); err != nil {
		return false, err
	}
	return records > 1 && cells%records == 0, nil
}

func checkData(a *app) (bool, error) {
	t, err := sway.LoadCSVFile(a.opts.File)
	if err != nil {
		return false, err
	}
	if err := a.pr.Line("rows=%d x=%d y=%d", t.Len(), len(t.Cols.X), len(t.Cols.Y)); err != nil {
		return false, err
	}
	return t.Len() > 0 && len(t.Cols.X) > 0, nil
}

func checkStats(a *app) (bool, error) {
	t, err := sway.LoadCSVFile(a.opts.File)
	if err != nil {
		return false, err
	}
	groups := []struct {
		label string
		cols  []sway.Column
	}{
		{"y", t.GoalColumns()},
		{"x", t.Cols.X},
	}
	for _, g := range groups {
		for _, which := range []sway.Stat{sway.StatMid, sway.StatDiv} {
			if err := a.pr.Stats(g.label, t, which, g.cols, a.opts.Places); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

func checkClone(a *app) (bool, error) {
	t, err := sway.LoadCSVFile(a.opts.File)
	if err != nil {
		return false, err
	}
	c, err := t.Clone(t.Rows)
	if err != nil {
		return false, err
	}
	same := t.Len() == c.Len() &&
		len(t.Cols.X) == len(c.Cols.X) &&
		len(t.Cols.Y) == len(c.Cols.Y) &&
		strings.Join(t.Cols.Schema.Names(), ",") == strings.Join(c.Cols.Schema.Names(), ",")
	for i, y := range t.Cols.Y {
		same = same && y.W() == c.Cols.Y[i].W()
	}
	for i, x := range t.Cols.X {
		same = same && x.Pos() == c.Cols.X[i].Pos()
	}
	return same, nil
}

func checkAround(a *app) (bool, error) {
	t, err := sway.LoadCSVFile(a.opts.File)
	if err != nil {
		return false, err
	}
	if t.Len() < 2 {
		return false, fmt.Errorf("around needs at least 2 rows, got %d", t.Len())
	}
	i, last := 0, -1.0
	ok := true
	for r, d := range sway.Around(t, t.Rows[1], a.engine()) {
		ok = ok && d >= last
		last = d
		if i%50 == 0 {
			if err := a.pr.Line("%d %.2f %s", i, d, cells(r)); err != nil {
				return false, err
			}
		}
		i++
	}
	return ok && i == t.Len(), nil
}

func checkHalf(a *app) (bool, error) {
	t, err := sway.LoadCSVFile(a.opts.File)
	if err != nil {
		return false, err
	}
	h, err := sway.Half(t, t.Rows, nil, a.rng, a.engine())
	if err != nil {
		return false, err
	}
	lines := []string{
		fmt.Sprintf("%d %d %d", len(h.Left), len(h.Right), t.Len()),
		fmt.Sprintf("%s %g", cells(h.A), round(h.C, 2)),
		cells(h.Mid),
		cells(h.B),
	}
	for _, l := range lines {
		if err := a.pr.Line("%s", l); err != nil {
			return false, err
		}
	}
	return len(h.Left)+len(h.Right) == t.Len(), nil
}

func checkCluster(a *app) (bool, error) {
	t, err := sway.LoadCSVFile(a.opts.File)
	if err != nil {
		return false, err
	}
	tree, err := sway.Cluster(t, a.rng, a.engine())
	if err != nil {
		return false, err
	}
	if err := a.pr.TreeStats(tree, a.opts.Places); err != nil {
		return false, err
	}
	n := 0
	for _, l := range sway.Leaves(tree) {
		n += l.Data.Len()
	}
	return n == t.Len(), nil
}

func checkSway(a *app) (bool, error) {
	t, err := sway.LoadCSVFile(a.opts.File)
	if err != nil {
		return false, err
	}
	tree, err := sway.Sway(t, a.rng, a.engine())
	if err != nil {
		return false, err
	}
	if err := a.pr.TreeStats(tree, a.opts.Places); err != nil {
		return false, err
	}
	best := sway.Branch(tree)
	return len(best) > 0 && best[len(best)-1].Len() > 0, nil
}

func checkRepCols(a *app) (bool, error) {
	g, err := sway.LoadRepgridFile(a.opts.Grid)
	if err != nil {
		return false, err
	}
	t, err := g.RepCols()
	if err != nil {
		return false, err
	}
	return true, a.dump(t)
}

func checkRepRows(a *app) (bool, error) {
	g, err := sway.LoadRepgridFile(a.opts.Grid)
	if err != nil {
		return false, err
	}
	t, err := g.RepRows()
	if err != nil {
		return false, err
	}
	return true, a.dump(t)
}

// checkRepgrid clusters the items and the attributes of a grid, then draws
// the items on the plane of one split.
func checkRepgrid(a *app) (bool, error) {
	g, err := sway.LoadRepgridFile(a.opts.Grid)
	if err != nil {
		return false, err
	}
	rows, err := g.RepRows()
	if err != nil {
		return false, err
	}
	cols, err := g.RepCols()
	if err != nil {
		return false, err
	}
	for _, t := range []*sway.Table{rows, cols} {
		tree, err := sway.Cluster(t, a.rng, a.engine())
		if err != nil {
			return false, err
		}
		if err := a.pr.Tree(tree); err != nil {
			return false, err
		}
	}
	if _, err := sway.Half(rows, rows.Rows, nil, a.rng, a.engine()); err != nil {
		return false, err
	}
	return true, a.pr.Place(rows, 20)
}

func (a *app) dump(t *sway.Table) error {
	if err := a.pr.Line("%s", strings.Join(t.Cols.Schema.Names(), ", ")); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := a.pr.Line("%s", cells(r)); err != nil {
			return err
		}
	}
	return nil
}

func cells(r *sway.Row) string {
	parts := make([]string, len(r.Cells))
	for i, v := range r.Cells {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
