// Package output provides the write side of the splitter: bounded output
// workbooks that are filled row by row and flushed to disk.
package output

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/xuri/excelize/v2"
)

// Chunk is a write-only output workbook with a single sheet.
type Chunk struct {
	f      *excelize.File
	sw     *excelize.StreamWriter
	rows   int
	styles *styleCloner
	log    zerolog.Logger

	formulaRefsLogged map[int]bool
}

// NewChunk creates an empty output workbook whose sheet is named sheet.
func NewChunk(sheet string, log zerolog.Logger) (*Chunk, error) {
	f := excelize.NewFile()
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, err
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Chunk{
		f:                 f,
		sw:                sw,
		styles:            newStyleCloner(f),
		log:               log,
		formulaRefsLogged: make(map[int]bool),
	}, nil
}

// Rows returns the number of rows written, header included.
func (c *Chunk) Rows() int {
	return c.rows
}

// DataRows returns the number of rows written below the header.
func (c *Chunk) DataRows() int {
	if c.rows == 0 {
		return 0
	}
	return c.rows - 1
}

// WriteHeader writes the header labels as the next row.
func (c *Chunk) WriteHeader(header models.HeaderRecord) error {
	labels := header.Labels()
	values := make([]interface{}, len(labels))
	for i, label := range labels {
		values[i] = excelize.Cell{Value: label}
	}
	return c.appendRow(values)
}

// WriteRow transcribes the first width cells of row into the next row.
func (c *Chunk) WriteRow(row models.Row, width int) error {
	values, err := c.transcribe(row, width)
	if err != nil {
		return err
	}
	return c.appendRow(values)
}

func (c *Chunk) appendRow(values []interface{}) error {
	cellName, err := excelize.CoordinatesToCellName(1, c.rows+1)
	if err != nil {
		return err
	}
	if err := c.sw.SetRow(cellName, values); err != nil {
		return err
	}
	c.rows++
	return nil
}

// Flush serializes the workbook to path. The file handle is closed on every
// path; a close error is reported when serialization itself succeeded.
func (c *Chunk) Flush(path string) (err error) {
	if err := c.sw.Flush(); err != nil {
		return err
	}
	c.f.Path = path
	out, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = c.f.WriteTo(out)
	return err
}

// Close releases the workbook's temporary files.
func (c *Chunk) Close() error {
	return c.f.Close()
}
