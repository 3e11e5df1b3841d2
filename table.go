package sway

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Table owns a sequence of rows and the columns summarizing them.
type Table struct {
	Rows []*Row
	Cols *Cols
}

// NewTable returns an empty table for schema s.
func NewTable(s Schema) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Table{Cols: newCols(s)}, nil
}

// FromRecords builds a table whose first record is the header and whose
// remaining records are data. At least one data record is required.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrSchema)
	}
	s, err := ParseHeader(records[0])
	if err != nil {
		return nil, err
	}
	t, err := NewTable(s)
	if err != nil {
		return nil, err
	}
	if len(records) == 1 {
		return nil, ErrNoRows
	}
	for i, rec := range records[1:] {
		if err := t.AddRecord(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return t, nil
}

// AddRecord parses rec against t's schema and adds it.
func (t *Table) AddRecord(rec []string) error {
	r, err := t.Cols.Schema.ParseRow(rec)
	if err != nil {
		return err
	}
	return t.Add(r)
}

// Add appends r and updates every column with its cells. A numeric
// column accepts only missing cells and finite numbers.
func (t *Table) Add(r *Row) error {
	if len(r.Cells) != len(t.Cols.All) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowLength, len(r.Cells), len(t.Cols.All))
	}
	for _, col := range t.Cols.All {
		if _, ok := col.(*Num); !ok {
			continue
		}
		v := r.Cells[col.Pos()]
		if v.IsMissing() {
			continue
		}
		if f, ok := v.Float(); !ok || math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: column %q holds %q", ErrBadCell, col.Name(), v.String())
		}
	}
	t.Rows = append(t.Rows, r)
	t.Cols.add(r)
	return nil
}

// Clone returns a new table with the same schema holding rows. The clone
// has its own columns and its own Row values; cell slices are shared since
// cells are never written after a row is read.
func (t *Table) Clone(rows []*Row) (*Table, error) {
	c := &Table{Cols: newCols(t.Cols.Schema), Rows: make([]*Row, 0, len(rows))}
	for _, r := range rows {
		cp := *r
		if err := c.Add(&cp); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Stat selects the statistic reported by Stats.
type Stat uint8

const (
	StatMid Stat = iota
	StatDiv
)

func (s Stat) String() string {
	if s == StatDiv {
		return "div"
	}
	return "mid"
}

// ParseStat maps "mid" and "div" onto a Stat.
func ParseStat(s string) (Stat, error) {
	switch s {
	case "mid":
		return StatMid, nil
	case "div":
		return StatDiv, nil
	}
	return 0, fmt.Errorf("sway: unknown stat %q (want \"mid\" or \"div\")", s)
}

// Stats reports which statistic of each of cols, keyed by column name.
// Numbers are rounded to places decimal digits.
func (t *Table) Stats(which Stat, cols []Column, places int) (map[string]Value, error) {
	out := make(map[string]Value, len(cols))
	for _, col := range cols {
		var v Value
		switch which {
		case StatDiv:
			d, err := col.Div()
			if err != nil {
				return nil, err
			}
			v = Number(d)
		default:
			m, err := col.Mid()
			if err != nil {
				return nil, err
			}
			v = m
		}
		if f, ok := v.Float(); ok {
			v = Number(scalar.Round(f, places))
		}
		out[col.Name()] = v
	}
	return out, nil
}

// GoalColumns returns t.Cols.Y as a []Column, for passing to Stats.
func (t *Table) GoalColumns() []Column {
	out := make([]Column, len(t.Cols.Y))
	for i, c := range t.Cols.Y {
		out[i] = c
	}
	return out
}
