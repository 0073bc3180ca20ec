package exsplit

import (
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
)

// Plan reports the output files Split would write for the workbook at path,
// without writing anything.
func Plan(path string, opts Options) (*models.Plan, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	src, err := openSource(path, opts)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	total, err := src.PhysicalRows()
	if err != nil {
		return nil, NewReadError(path, err)
	}
	return &models.Plan{
		Source:     path,
		SourceRows: total,
		MaxRows:    opts.MaxRows,
		ChunkRows:  ChunkSizes(total, opts.MaxRows),
	}, nil
}

// ChunkSizes returns the data-row count of each output file for a sheet of
// physicalRows rows, header included. Sheets below the threshold yield nil.
func ChunkSizes(physicalRows, maxRows int) []int {
	if maxRows <= 0 || physicalRows < maxRows {
		return nil
	}
	var sizes []int
	for remaining := physicalRows - 1; remaining > 0; remaining -= maxRows {
		sizes = append(sizes, min(remaining, maxRows))
	}
	return sizes
}
