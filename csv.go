package sway

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV calls fn for every record of r, header included. Fields are
// trimmed of surrounding whitespace; blank lines are skipped. Iteration
// stops at the first error from fn.
func ReadCSV(r io.Reader, fn func(record []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("sway: csv: %w", err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		out := make([]string, len(rec))
		for i, f := range rec {
			out[i] = strings.TrimSpace(f)
		}
		if err := fn(out); err != nil {
			return err
		}
	}
}

// LoadCSV reads a table from r: the first record is the header, the rest
// are rows.
func LoadCSV(r io.Reader) (*Table, error) {
	var t *Table
	err := ReadCSV(r, func(rec []string) error {
		if t == nil {
			s, err := ParseHeader(rec)
			if err != nil {
				return err
			}
			t, err = NewTable(s)
			return err
		}
		return t.AddRecord(rec)
	})
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: missing header", ErrSchema)
	}
	if t.Len() == 0 {
		return nil, ErrNoRows
	}
	return t, nil
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSVFile opens path and calls ReadCSV.
func ReadCSVFile(path string, fn func(record []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReadCSV(f, fn)
}
