package sway

import (
	"errors"
	"math"
	"testing"
)

func TestHalf_Partition(t *testing.T) {
	tbl := auto93(t)
	rng := NewRand(DefaultSeed)
	h, err := Half(tbl, tbl.Rows, nil, rng, DefaultConfig())
	if err != nil {
		t.Fatalf("Half: %v", err)
	}
	if len(h.Left) != 199 || len(h.Right) != 199 {
		t.Errorf("sizes = %d/%d, want 199/199", len(h.Left), len(h.Right))
	}
	if h.Mid != h.Left[len(h.Left)-1] {
		t.Error("Mid is not the last row of Left")
	}
	if h.C <= 0 || h.C > 1 {
		t.Errorf("C = %v, want in (0,1]", h.C)
	}
	got := rowCounts(append(append([]*Row{}, h.Left...), h.Right...))
	want := rowCounts(tbl.Rows)
	for k, n := range want {
		if got[k] != n {
			t.Fatalf("row %s appears %d times, want %d", k, got[k], n)
		}
	}
	for _, r := range h.Left {
		if r.X > h.Mid.X {
			t.Errorf("left row X=%v beyond mid X=%v", r.X, h.Mid.X)
		}
	}
	for _, r := range h.Right {
		if r.X < h.Mid.X {
			t.Errorf("right row X=%v before mid X=%v", r.X, h.Mid.X)
		}
		if r.X < 0 || r.X > 1 || math.IsNaN(r.Y) {
			t.Errorf("bad projection (%v, %v)", r.X, r.Y)
		}
	}
}

func TestHalf_UsesAnchor(t *testing.T) {
	tbl := auto93(t)
	a := tbl.Rows[17]
	h, err := Half(tbl, tbl.Rows, a, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Half: %v", err)
	}
	if h.A != a {
		t.Error("Half ignored the given anchor")
	}
	if a.X != 0 {
		t.Errorf("anchor projects to X=%v, want 0", a.X)
	}
}

func TestHalf_Deterministic(t *testing.T) {
	run := func() *Halves {
		tbl := auto93(t)
		h, err := Half(tbl, tbl.Rows, nil, NewRand(7), DefaultConfig())
		if err != nil {
			t.Fatalf("Half: %v", err)
		}
		return h
	}
	h1, h2 := run(), run()
	if rowKey(h1.A) != rowKey(h2.A) || rowKey(h1.B) != rowKey(h2.B) || h1.C != h2.C {
		t.Fatal("anchors differ across identical runs")
	}
	for i := range h1.Left {
		if rowKey(h1.Left[i]) != rowKey(h2.Left[i]) {
			t.Fatalf("left[%d] differs across identical runs", i)
		}
	}
}

func TestHalf_SmallSample(t *testing.T) {
	tbl := auto93(t)
	cfg := DefaultConfig()
	cfg.Sample = 16
	h, err := Half(tbl, tbl.Rows, nil, NewRand(DefaultSeed), cfg)
	if err != nil {
		t.Fatalf("Half: %v", err)
	}
	if len(h.Left)+len(h.Right) != tbl.Len() {
		t.Errorf("partition lost rows: %d + %d", len(h.Left), len(h.Right))
	}
}

func TestHalf_Preconditions(t *testing.T) {
	tbl := auto93(t)
	rng := NewRand(DefaultSeed)
	if _, err := Half(tbl, tbl.Rows[:1], nil, rng, DefaultConfig()); !errors.Is(err, ErrEmptyPartition) {
		t.Errorf("one row: got %v, want ErrEmptyPartition", err)
	}
	cfg := DefaultConfig()
	cfg.Sample = -3
	if _, err := Half(tbl, tbl.Rows, nil, rng, cfg); !errors.Is(err, ErrEmptyPartition) {
		t.Errorf("negative sample: got %v, want ErrEmptyPartition", err)
	}
}

func TestHalf_TwoRows(t *testing.T) {
	tbl := auto93(t)
	h, err := Half(tbl, tbl.Rows[:2], nil, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Half: %v", err)
	}
	if len(h.Left) != 1 || len(h.Right) != 1 {
		t.Errorf("sizes = %d/%d, want 1/1", len(h.Left), len(h.Right))
	}
}

func TestCluster_LeavesCoverEveryRowOnce(t *testing.T) {
	tbl := auto93(t)
	tree, err := Cluster(tbl, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	var all []*Row
	total := 0
	stop := math.Sqrt(398)
	for _, l := range Leaves(tree) {
		total += l.Data.Len()
		all = append(all, l.Data.Rows...)
		if float64(l.Data.Len()) > stop {
			t.Errorf("leaf with %d rows exceeds stop size %.1f", l.Data.Len(), stop)
		}
	}
	if total != 398 {
		t.Errorf("leaf sizes sum to %d, want 398", total)
	}
	got, want := rowCounts(all), rowCounts(tbl.Rows)
	for k, n := range want {
		if got[k] != n {
			t.Fatalf("row %s appears %d times in leaves, want %d", k, got[k], n)
		}
	}
}

func TestCluster_TreeShape(t *testing.T) {
	tbl := auto93(t)
	tree, err := Cluster(tbl, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	Walk(tree, func(n Node, _ int) bool {
		s, ok := n.(*Split)
		if !ok {
			return true
		}
		if s.Left == nil || s.Right == nil {
			t.Fatal("split missing a child")
		}
		l, r := s.Left.Table().Len(), s.Right.Table().Len()
		if l == 0 || r == 0 || l+r != s.Data.Len() {
			t.Errorf("split of %d rows into %d + %d", s.Data.Len(), l, r)
		}
		if len(s.Data.Cols.X) != len(tbl.Cols.X) {
			t.Error("node table lost feature columns")
		}
		return true
	})
	if tree.Table() == tbl {
		t.Error("root node shares the input table")
	}
}

func TestCluster_SingleRowIsLeaf(t *testing.T) {
	tbl := mustTable(t, []string{"A", "B+"}, []string{"1", "2"})
	tree, err := Cluster(tbl, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	if _, ok := tree.(*Leaf); !ok {
		t.Errorf("got %T, want *Leaf", tree)
	}
}

func TestCluster_Deterministic(t *testing.T) {
	shape := func() []int {
		tbl := auto93(t)
		tree, err := Cluster(tbl, NewRand(DefaultSeed), DefaultConfig())
		if err != nil {
			t.Fatalf("Cluster: %v", err)
		}
		var sizes []int
		Walk(tree, func(n Node, d int) bool {
			sizes = append(sizes, d, n.Table().Len())
			return true
		})
		return sizes
	}
	a, b := shape(), shape()
	if len(a) != len(b) {
		t.Fatalf("trees differ in node count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("trees differ at %d", i)
		}
	}
}

func TestSway_StrictlyShrinkingBranch(t *testing.T) {
	tbl := auto93(t)
	tree, err := Sway(tbl, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Sway: %v", err)
	}
	branch := Branch(tree)
	if len(branch) < 3 {
		t.Fatalf("branch has %d nodes, want several", len(branch))
	}
	if branch[0].Len() != 398 {
		t.Errorf("root has %d rows, want 398", branch[0].Len())
	}
	for i := 1; i < len(branch); i++ {
		if branch[i].Len() >= branch[i-1].Len() {
			t.Errorf("branch sizes not decreasing at %d: %d then %d", i, branch[i-1].Len(), branch[i].Len())
		}
	}
	if last := branch[len(branch)-1].Len(); float64(last) > math.Sqrt(398) {
		t.Errorf("final node has %d rows", last)
	}
}

func TestSway_DiscardedHalvesAreLeaves(t *testing.T) {
	tbl := auto93(t)
	tree, err := Sway(tbl, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Sway: %v", err)
	}
	total := 0
	for _, l := range Leaves(tree) {
		total += l.Data.Len()
	}
	if total != 398 {
		t.Errorf("leaves hold %d rows, want 398", total)
	}
	for n := tree; ; {
		s, ok := n.(*Split)
		if !ok {
			break
		}
		if _, ok := s.Right.(*Leaf); !ok {
			t.Fatalf("discarded half is %T, want *Leaf", s.Right)
		}
		if worse, _ := Better(tbl, s.B, s.A); worse {
			t.Error("kept anchor is dominated by the discarded anchor")
		}
		n = s.Left
	}
}

func TestSway_ImprovesGoals(t *testing.T) {
	tbl := auto93(t)
	tree, err := Sway(tbl, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Sway: %v", err)
	}
	branch := Branch(tree)
	best := branch[len(branch)-1]
	// Lbs- is minimized: the surviving rows should be lighter than average.
	if best.Cols.Y[0].Mean() >= tbl.Cols.Y[0].Mean() {
		t.Errorf("swayed Lbs mean %v not below overall %v", best.Cols.Y[0].Mean(), tbl.Cols.Y[0].Mean())
	}
}

func TestSway_NoGoals(t *testing.T) {
	tbl := line(t)
	if _, err := Sway(tbl, NewRand(DefaultSeed), DefaultConfig()); !errors.Is(err, ErrNoGoals) {
		t.Errorf("got %v, want ErrNoGoals", err)
	}
}
