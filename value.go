package sway

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindMissing valueKind = iota
	kindNumber
	kindSymbol
)

// MissingMark is the cell text that denotes a missing value.
const MissingMark = "?"

// Value is one table cell: missing, a number, or a symbol.
// The zero Value is missing.
type Value struct {
	kind valueKind
	num  float64
	sym  string
}

// Missing is the missing-value sentinel.
var Missing = Value{}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: kindNumber, num: f} }

// Symbol returns a symbolic Value.
func Symbol(s string) Value { return Value{kind: kindSymbol, sym: s} }

// ParseCell converts cell text into a Value of kind k. Surrounding
// whitespace is ignored and "?" is missing. Symbolic text is kept as
// written; numeric text must parse to a finite float.
func ParseCell(s string, k Kind) (Value, error) {
	s = strings.TrimSpace(s)
	if s == MissingMark {
		return Missing, nil
	}
	if k == Symbolic {
		return Symbol(s), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing, fmt.Errorf("%w: %q is not a number", ErrBadCell, s)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Missing, fmt.Errorf("%w: %q is not finite", ErrBadCell, s)
	}
	return Number(f), nil
}

func (v Value) IsMissing() bool { return v.kind == kindMissing }
func (v Value) IsNumber() bool  { return v.kind == kindNumber }
func (v Value) IsSymbol() bool  { return v.kind == kindSymbol }

// Float returns the numeric payload and whether v is a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == kindNumber }

// String renders v the way it would appear in a CSV cell.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case kindSymbol:
		return v.sym
	default:
		return MissingMark
	}
}

// Row is one record, positionally aligned with its table's columns.
// X and Y hold the row's projected coordinate from the most recent Half
// that saw it; they are not part of the row's identity.
type Row struct {
	Cells []Value
	X, Y  float64
}

// ParseRow parses cell texts into a Row, each cell by its column's Kind.
func (s Schema) ParseRow(cells []string) (*Row, error) {
	if len(cells) != len(s) {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrRowLength, len(cells), len(s))
	}
	r := &Row{Cells: make([]Value, len(cells))}
	for i, c := range cells {
		v, err := ParseCell(c, s[i].Kind)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", s[i].Name, err)
		}
		r.Cells[i] = v
	}
	return r, nil
}

// Last returns the row's last cell, or Missing for an empty row.
func (r *Row) Last() Value {
	if len(r.Cells) == 0 {
		return Missing
	}
	return r.Cells[len(r.Cells)-1]
}
