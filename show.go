package sway

import (
	"fmt"
	"io"
	"strings"
)

// indent is the per-level prefix used by Show and ShowStats.
const indent = "|.. "

// Show prints one line per node of n, indented by depth. A leaf prints the
// last cell of its last row; a split prints C as a whole percentage.
func Show(w io.Writer, n Node) error {
	var err error
	Walk(n, func(n Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s\n", Indent(depth), Label(n))
		return err == nil
	})
	return err
}

// ShowStats prints each node's row count, followed for the root and for
// leaves by the mids of its goal columns rounded to places.
func ShowStats(w io.Writer, n Node, places int) error {
	var err error
	Walk(n, func(n Node, depth int) bool {
		if err != nil {
			return false
		}
		t := n.Table()
		line := fmt.Sprintf("%s%d", Indent(depth), t.Len())
		if _, isLeaf := n.(*Leaf); (isLeaf || depth == 0) && len(t.Cols.Y) > 0 {
			var mids string
			mids, err = FormatStats(t, StatMid, t.GoalColumns(), places)
			if err != nil {
				return false
			}
			line += "  " + mids
		}
		_, err = fmt.Fprintln(w, line)
		return err == nil
	})
	return err
}

// Indent returns the prefix for a node at depth.
func Indent(depth int) string { return strings.Repeat(indent, depth) }

// Label is the text Show prints for n: the last cell of a leaf's last row,
// or a split's C as a whole percentage.
func Label(n Node) string {
	switch n := n.(type) {
	case *Leaf:
		if rows := n.Data.Rows; len(rows) > 0 {
			return rows[len(rows)-1].Last().String()
		}
	case *Split:
		return fmt.Sprintf("%.0f", 100*n.C)
	}
	return MissingMark
}

// FormatStats renders Stats as "{name:value ...}" in column order.
func FormatStats(t *Table, which Stat, cols []Column, places int) (string, error) {
	stats, err := t.Stats(which, cols, places)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.Name() + ":" + stats[c.Name()].String()
	}
	return "{" + strings.Join(parts, " ") + "}", nil
}
