package sway

import (
	"bytes"
	"strings"
	"testing"
)

func TestShow_PrintsEveryNodeOnce(t *testing.T) {
	tbl := auto93(t)
	tree, err := Cluster(tbl, NewRand(DefaultSeed), DefaultConfig())
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	nodes := 0
	Walk(tree, func(Node, int) bool { nodes++; return true })

	var buf bytes.Buffer
	if err := Show(&buf, tree); err != nil {
		t.Fatalf("Show: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != nodes {
		t.Errorf("printed %d lines for %d nodes", len(lines), nodes)
	}
	if strings.HasPrefix(lines[0], indent) {
		t.Errorf("root line is indented: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], indent) {
		t.Errorf("child line is not indented: %q", lines[1])
	}
}

func TestShow_Labels(t *testing.T) {
	a := mustTable(t, []string{"A", "nameX"}, []string{"1", "first"}, []string{"2", "second"})
	b := mustTable(t, []string{"A", "nameX"}, []string{"9", "third"})
	tree := &Split{Data: a, C: 0.427, Left: &Leaf{Data: a}, Right: &Leaf{Data: b}}

	var buf bytes.Buffer
	if err := Show(&buf, tree); err != nil {
		t.Fatalf("Show: %v", err)
	}
	want := "43\n|.. second\n|.. third\n"
	if buf.String() != want {
		t.Errorf("Show =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestShowStats(t *testing.T) {
	tbl := mustTable(t,
		[]string{"A", "Mpg+"},
		[]string{"1", "10"},
		[]string{"2", "20"},
		[]string{"3", "30"},
		[]string{"4", "40"},
	)
	left, _ := tbl.Clone(tbl.Rows[:2])
	right, _ := tbl.Clone(tbl.Rows[2:])
	tree := &Split{Data: tbl, Left: &Leaf{Data: left}, Right: &Leaf{Data: right}}

	var buf bytes.Buffer
	if err := ShowStats(&buf, tree, 1); err != nil {
		t.Fatalf("ShowStats: %v", err)
	}
	want := "4  {Mpg+:25}\n|.. 2  {Mpg+:15}\n|.. 2  {Mpg+:35}\n"
	if buf.String() != want {
		t.Errorf("ShowStats =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestFormatStats_ColumnOrder(t *testing.T) {
	tbl := auto93(t)
	s, err := FormatStats(tbl, StatMid, tbl.GoalColumns(), 0)
	if err != nil {
		t.Fatalf("FormatStats: %v", err)
	}
	i, j, k := strings.Index(s, "Lbs-"), strings.Index(s, "Acc+"), strings.Index(s, "Mpg+")
	if i < 0 || !(i < j && j < k) {
		t.Errorf("columns out of order: %s", s)
	}
}
