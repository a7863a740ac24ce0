package report

import "fmt"

// DataLoadError means the deck could not be read or is not well-formed.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load flashcards from %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// SchemaError means a record lacks a required field. Index is the record's
// position in the slice that was being processed.
type SchemaError struct {
	Index int
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("flashcard %d is missing required field %q", e.Index, e.Field)
}

// FormatError means a next_review value is not a usable timestamp.
type FormatError struct {
	Index int
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("flashcard %d: next_review %s is not a valid timestamp: %v", e.Index, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
