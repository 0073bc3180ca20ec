package models

// ChunkInfo describes one flushed output workbook.
type ChunkInfo struct {
	// Sequence is the 1-based output number.
	Sequence int `json:"sequence"`
	// Path is the written file path.
	Path string `json:"path"`
	// DataRows is the number of rows below the header.
	DataRows int `json:"data_rows"`
}

// Result summarizes a split operation.
type Result struct {
	// Source is the input file path.
	Source string `json:"source"`
	// SourceRows is the physical row count of the source sheet, header included.
	SourceRows int `json:"source_rows"`
	// MaxRows is the configured data-row bound per output file.
	MaxRows int `json:"max_rows"`
	// Header holds the captured column labels (nil when no split happened).
	Header []string `json:"header,omitempty"`
	// Chunks lists the output files in the order they were written.
	Chunks []ChunkInfo `json:"chunks,omitempty"`
}

// Split reports whether any output file was produced.
func (r *Result) Split() bool {
	return len(r.Chunks) > 0
}

// Paths returns the output file paths in order.
func (r *Result) Paths() []string {
	paths := make([]string, 0, len(r.Chunks))
	for _, c := range r.Chunks {
		paths = append(paths, c.Path)
	}
	return paths
}

// Plan describes the chunks a split would produce without writing them.
type Plan struct {
	// Source is the input file path.
	Source string `json:"source"`
	// SourceRows is the physical row count, header included.
	SourceRows int `json:"source_rows"`
	// MaxRows is the data-row bound per output file.
	MaxRows int `json:"max_rows"`
	// ChunkRows holds the data-row count of each planned output file.
	ChunkRows []int `json:"chunk_rows,omitempty"`
}
