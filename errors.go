package sway

import "errors"

// Sentinel errors. Callers match them with errors.Is; functions add context
// with fmt.Errorf("...: %w", ErrX).
var (
	// ErrSchema is returned when a header cannot describe a usable table,
	// e.g. it declares no feature columns or a symbolic goal column.
	ErrSchema = errors.New("sway: invalid schema")

	// ErrRowLength is returned when a row's length differs from the header's.
	ErrRowLength = errors.New("sway: row length does not match schema")

	// ErrBadCell is returned when a cell does not fit its column, e.g. text
	// or a non-finite number in a numeric column.
	ErrBadCell = errors.New("sway: invalid cell")

	// ErrNoRows is returned when a source holds a header but no data rows.
	ErrNoRows = errors.New("sway: no data rows")

	// ErrNoGoals is returned by goal-driven operations on a table with no
	// goal columns.
	ErrNoGoals = errors.New("sway: table has no goal columns")

	// ErrEmptyColumn is returned by Mid and Div on a column that has not
	// seen any non-missing value.
	ErrEmptyColumn = errors.New("sway: column is empty")

	// ErrEmptyPartition is returned when a split is requested that could
	// produce an empty half.
	ErrEmptyPartition = errors.New("sway: split would produce an empty partition")
)
