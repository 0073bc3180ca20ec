// Package exsplit splits a single-sheet spreadsheet into smaller files that
// each repeat the header row.
package exsplit

import (
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// DefaultMaxRows is the number of data rows per output file when none is given.
const DefaultMaxRows = 1000

// Options configures split behavior.
type Options struct {
	// MaxRows is the maximum number of data rows per output file.
	MaxRows int
	// OutputDir is where output files are written.
	// If empty, files are written next to the source.
	OutputDir string
	// Logger receives progress and diagnostic events.
	// The zero value discards them.
	Logger zerolog.Logger
	// Open is passed to the spreadsheet reader, e.g. to supply a password.
	Open excelize.Options
}

// DefaultOptions returns default split options.
func DefaultOptions() Options {
	return Options{
		MaxRows: DefaultMaxRows,
		Logger:  zerolog.Nop(),
	}
}

// Validate checks that the options can drive a split.
func (o Options) Validate() error {
	if o.MaxRows <= 0 {
		return ErrInvalidMaxRows
	}
	return nil
}
