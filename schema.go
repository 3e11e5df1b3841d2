package sway

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind says how a column's values are summarized.
type Kind uint8

const (
	Symbolic Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "symbolic"
}

// Role says what a column is used for.
type Role uint8

const (
	// Feature columns drive row-to-row distance.
	Feature Role = iota
	// Goal columns are outcomes to minimize or maximize.
	Goal
	// Skip columns are carried along for display only.
	Skip
)

func (r Role) String() string {
	switch r {
	case Goal:
		return "goal"
	case Skip:
		return "skip"
	default:
		return "feature"
	}
}

// ColumnSpec is the explicit tag for one column.
type ColumnSpec struct {
	Pos  int
	Name string
	Kind Kind
	Role Role
	// W is +1 for goals to maximize, -1 for goals to minimize, 0 otherwise.
	W int
}

// Schema describes every column of a table in row order.
type Schema []ColumnSpec

// ParseHeader derives a Schema from header names:
//
//	Upper...   numeric (otherwise symbolic)
//	...+ ...-  goal to maximize / minimize
//	...X       skipped
//
// The header must declare at least one feature column, and goals must be
// numeric.
func ParseHeader(names []string) (Schema, error) {
	s := make(Schema, len(names))
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		spec := ColumnSpec{Pos: i, Name: name, Kind: Symbolic, Role: Feature}
		if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) {
			spec.Kind = Numeric
		}
		switch {
		case strings.HasSuffix(name, "X"):
			spec.Role = Skip
		case strings.HasSuffix(name, "+"):
			spec.Role, spec.W = Goal, 1
		case strings.HasSuffix(name, "-"):
			spec.Role, spec.W = Goal, -1
		}
		s[i] = spec
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that s can back a Table.
func (s Schema) Validate() error {
	features := 0
	for i, c := range s {
		if c.Pos != i {
			return fmt.Errorf("%w: column %q at index %d claims position %d", ErrSchema, c.Name, i, c.Pos)
		}
		switch c.Role {
		case Feature:
			features++
		case Goal:
			if c.Kind != Numeric {
				return fmt.Errorf("%w: goal column %q must be numeric", ErrSchema, c.Name)
			}
			if c.W != 1 && c.W != -1 {
				return fmt.Errorf("%w: goal column %q has weight %d", ErrSchema, c.Name, c.W)
			}
		}
	}
	if features == 0 {
		return fmt.Errorf("%w: no feature columns", ErrSchema)
	}
	return nil
}

// Names returns the column names in order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Name
	}
	return out
}

// Cols holds one table's columns, grouped by role. X and Y are stable
// sub-sequences of All; skipped columns appear only in All.
type Cols struct {
	Schema Schema
	All    []Column
	X      []Column
	Y      []*Num
}

func newCols(s Schema) *Cols {
	cols := &Cols{Schema: s, All: make([]Column, len(s))}
	for i, spec := range s {
		var col Column
		if spec.Kind == Numeric {
			n := NewNum(spec.Pos, spec.Name)
			n.w = spec.W
			col = n
		} else {
			col = NewSym(spec.Pos, spec.Name)
		}
		cols.All[i] = col
		switch spec.Role {
		case Feature:
			cols.X = append(cols.X, col)
		case Goal:
			cols.Y = append(cols.Y, col.(*Num))
		}
	}
	return cols
}

// add feeds every cell of r to its column.
func (c *Cols) add(r *Row) {
	for _, col := range c.All {
		col.Add(r.Cells[col.Pos()])
	}
}
