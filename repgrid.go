package sway

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A repertory grid rates a set of items (e.g. operating systems) against a
// set of bipolar attributes (e.g. fast/slow). Attributes are rows of ratings
// with a pole name at each end.

// Attribute is one bipolar construct and its rating of every item.
type Attribute struct {
	Left, Right string
	Ratings     []float64
}

// Label is "left:right".
func (a Attribute) Label() string { return a.Left + ":" + a.Right }

// Grid is a parsed repertory grid.
type Grid struct {
	Domain     string
	Attributes []Attribute
	Items      []string
}

type rawGrid struct {
	Domain string  `json:"domain"`
	Cols   [][]any `json:"cols"`
	Rows   [][]any `json:"rows"`
}

// LoadRepgrid decodes a grid of the form
//
//	{"domain": "...",
//	 "cols": [["fast", 1, 5, 3, "slow"], ...],
//	 "rows": [[..., "item0"], [..., "item1"], ...]}
//
// Each cols entry is a left pole, one rating per item, and a right pole.
// Item names are the last cell of each rows entry; when rows is absent
// items are named item0, item1, ...
func LoadRepgrid(r io.Reader) (*Grid, error) {
	var raw rawGrid
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("sway: decode repgrid: %w", err)
	}
	if len(raw.Cols) == 0 {
		return nil, fmt.Errorf("%w: repgrid has no cols", ErrSchema)
	}
	g := &Grid{Domain: raw.Domain}
	k := -1
	for i, col := range raw.Cols {
		if len(col) < 3 {
			return nil, fmt.Errorf("%w: repgrid col %d has %d cells, want at least 3", ErrSchema, i, len(col))
		}
		a := Attribute{
			Left:    cellText(col[0]),
			Right:   cellText(col[len(col)-1]),
			Ratings: make([]float64, 0, len(col)-2),
		}
		for j, c := range col[1 : len(col)-1] {
			f, ok := c.(float64)
			if !ok {
				return nil, fmt.Errorf("%w: repgrid col %d rating %d is %v, not a number", ErrSchema, i, j, c)
			}
			a.Ratings = append(a.Ratings, f)
		}
		if k >= 0 && len(a.Ratings) != k {
			return nil, fmt.Errorf("%w: repgrid col %d has %d ratings, want %d", ErrRowLength, i, len(a.Ratings), k)
		}
		k = len(a.Ratings)
		g.Attributes = append(g.Attributes, a)
	}
	for _, row := range raw.Rows {
		if len(row) > 0 {
			g.Items = append(g.Items, cellText(row[len(row)-1]))
		}
	}
	if len(g.Items) == 0 {
		for i := 0; i < k; i++ {
			g.Items = append(g.Items, "item"+strconv.Itoa(i))
		}
	}
	if len(g.Items) != k {
		return nil, fmt.Errorf("%w: repgrid names %d items but rates %d", ErrRowLength, len(g.Items), k)
	}
	return g, nil
}

// LoadRepgridFile opens path and calls LoadRepgrid.
func LoadRepgridFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := LoadRepgrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func cellText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Transpose returns the column-major form of m. m must be rectangular.
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 {
		return nil
	}
	out := make([][]T, len(m[0]))
	for i := range out {
		out[i] = make([]T, len(m))
		for j := range m {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// RepCols builds a table with one row per attribute: its ratings of each
// item as numeric features Num0..Num{k-1}, then "left:right" in a skipped
// column named thingX. Clustering it groups attributes that rate items
// alike, i.e. likely synonyms.
func (g *Grid) RepCols() (*Table, error) {
	k := len(g.Items)
	s := make(Schema, 0, k+1)
	for i := 0; i < k; i++ {
		s = append(s, ColumnSpec{Pos: i, Name: "Num" + strconv.Itoa(i), Kind: Numeric, Role: Feature})
	}
	s = append(s, ColumnSpec{Pos: k, Name: "thingX", Kind: Symbolic, Role: Skip})
	t, err := NewTable(s)
	if err != nil {
		return nil, err
	}
	for _, a := range g.Attributes {
		cells := make([]Value, 0, k+1)
		for _, r := range a.Ratings {
			cells = append(cells, Number(r))
		}
		cells = append(cells, Symbol(a.Label()))
		if err := t.Add(&Row{Cells: cells}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// RepRows builds a table with one row per item: its rating on every
// attribute as numeric features named "left:right", then the item name in
// a skipped column named thingX.
func (g *Grid) RepRows() (*Table, error) {
	n := len(g.Attributes)
	s := make(Schema, 0, n+1)
	ratings := make([][]float64, n)
	for i, a := range g.Attributes {
		s = append(s, ColumnSpec{Pos: i, Name: a.Label(), Kind: Numeric, Role: Feature})
		ratings[i] = a.Ratings
	}
	s = append(s, ColumnSpec{Pos: n, Name: "thingX", Kind: Symbolic, Role: Skip})
	t, err := NewTable(s)
	if err != nil {
		return nil, err
	}
	for i, item := range Transpose(ratings) {
		cells := make([]Value, 0, n+1)
		for _, r := range item {
			cells = append(cells, Number(r))
		}
		cells = append(cells, Symbol(g.Items[i]))
		if err := t.Add(&Row{Cells: cells}); err != nil {
			return nil, err
		}
	}
	return t, nil
}
