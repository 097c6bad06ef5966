package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when an operation references a column
	// the loaded table does not have.
	ErrMissingColumn = errors.New("missing column")

	// ErrRowNotFound is returned for a row index outside the table.
	ErrRowNotFound = errors.New("row not found")
)

// ColumnError names the column an operation needed but did not find.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingColumn, e.Column)
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}
