package report

import (
	"strings"

	"github.com/TrevorS/sway"
)

const marks = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Mark is the grid character for the i-th row; rows beyond the alphabet
// share '*'.
func Mark(i int) byte {
	if i < len(marks) {
		return marks[i]
	}
	return '*'
}

// Place prints a legend mapping each row's mark to its last cell, then an
// (n+1)-column character grid with each row drawn at its projected (X, Y)
// from the most recent split. Later rows overwrite earlier ones that land
// on the same cell. Only grid lines up to the lowest occupied one print.
func (p *Printer) Place(t *sway.Table, n int) error {
	grid := make([][]byte, n+1)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", n+1))
	}
	maxY := 0
	for i, r := range t.Rows {
		m := Mark(i)
		if err := p.Line("%c %s", m, r.Last()); err != nil {
			return err
		}
		x, y := cell(r.X, n), cell(r.Y, n)
		maxY = max(maxY, y+1)
		grid[y][x] = m
	}
	if err := p.println(""); err != nil {
		return err
	}
	for _, line := range grid[:maxY] {
		if err := p.println(p.st.leaf(strings.TrimRight(string(line), " "))); err != nil {
			return err
		}
	}
	return nil
}

func cell(f float64, n int) int {
	i := int(f * float64(n))
	return min(max(i, 0), n)
}
