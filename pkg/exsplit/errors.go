package exsplit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a supported spreadsheet format.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrInvalidMaxRows indicates a non-positive rows-per-chunk bound.
var ErrInvalidMaxRows = errors.New("max rows must be positive")

// ErrMissingHeader indicates the sheet does not start with a header row.
var ErrMissingHeader = errors.New("first sheet row is empty; no header to copy")

// Stage names the part of a split that failed.
type Stage string

const (
	// StageRead covers opening the source and reading its rows.
	StageRead Stage = "read"
	// StageWrite covers building and flushing an output workbook.
	StageWrite Stage = "write"
)

// SplitError represents an error during a split.
type SplitError struct {
	Path  string
	Stage Stage
	// Chunk is the output sequence number being written (write stage only).
	Chunk int
	Err   error
}

func (e *SplitError) Error() string {
	if e.Stage == StageWrite {
		return fmt.Sprintf("split error writing chunk %d of %q: %v", e.Chunk, e.Path, e.Err)
	}
	return fmt.Sprintf("split error reading %q: %v", e.Path, e.Err)
}

func (e *SplitError) Unwrap() error {
	return e.Err
}

// NewReadError creates a SplitError for a failure on the source side.
func NewReadError(path string, err error) *SplitError {
	return &SplitError{
		Path:  path,
		Stage: StageRead,
		Err:   err,
	}
}

// NewWriteError creates a SplitError for a failure flushing chunk seq.
func NewWriteError(path string, seq int, err error) *SplitError {
	return &SplitError{
		Path:  path,
		Stage: StageWrite,
		Chunk: seq,
		Err:   err,
	}
}
