package sway

// Node is one node of a cluster tree: a *Leaf or a *Split.
type Node interface {
	// Table returns the rows that reached this node.
	Table() *Table
	isNode()
}

// Leaf is a node that was not split.
type Leaf struct {
	Data *Table
}

func (l *Leaf) Table() *Table { return l.Data }
func (*Leaf) isNode()         {}

// Split is a node whose rows were divided by Half.
type Split struct {
	Data *Table
	// A and B are the anchors of the split; Mid is the last row of Left.
	A, B, Mid *Row
	// C is the distance between A and B.
	C     float64
	Left  Node
	Right Node
}

func (s *Split) Table() *Table { return s.Data }
func (*Split) isNode()         {}

// Walk visits every node depth first, left before right, passing each
// node's depth (0 at n). Returning false from fn stops the walk below that
// node.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	if s, ok := n.(*Split); ok {
		walk(s.Left, depth+1, fn)
		walk(s.Right, depth+1, fn)
	}
}

// Leaves returns the leaves of n from left to right.
func Leaves(n Node) []*Leaf {
	var out []*Leaf
	Walk(n, func(n Node, _ int) bool {
		if l, ok := n.(*Leaf); ok {
			out = append(out, l)
		}
		return true
	})
	return out
}

// Branch follows Left children from n down to a leaf and returns the
// tables along the way. For a Sway tree this is the retained branch.
func Branch(n Node) []*Table {
	var out []*Table
	for n != nil {
		out = append(out, n.Table())
		s, ok := n.(*Split)
		if !ok {
			break
		}
		n = s.Left
	}
	return out
}
