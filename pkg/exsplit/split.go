package exsplit

import (
	"errors"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/output"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/parser"
)

// RowSource is a lazy, finite, single-pass sequence of source rows.
type RowSource interface {
	Next() bool
	Row() (models.Row, error)
	Err() error
}

// ChunkSink accumulates the rows of one output workbook.
type ChunkSink interface {
	WriteHeader(header models.HeaderRecord) error
	WriteRow(row models.Row, width int) error
	Flush(path string) error
	Close() error
}

// Split splits the first sheet of the workbook at path into files of at most
// opts.MaxRows data rows, each starting with a copy of the header row.
// Sources with fewer than opts.MaxRows physical rows are left alone.
//
// On failure the returned Result still lists the files flushed before the
// error; they are not removed.
func Split(path string, opts Options) (*models.Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger.With().Str("source", path).Logger()
	result := &models.Result{Source: path, MaxRows: opts.MaxRows}

	src, err := openSource(path, opts)
	if err != nil {
		return result, err
	}
	defer src.Close()

	total, err := src.PhysicalRows()
	if err != nil {
		return result, NewReadError(path, err)
	}
	result.SourceRows = total
	if total < opts.MaxRows {
		log.Info().
			Int("rows", total).
			Int("max_rows", opts.MaxRows).
			Msg("row count below threshold, nothing to split")
		return result, nil
	}
	log.Info().
		Int("rows", total).
		Int("max_rows", opts.MaxRows).
		Msg("splitting workbook")

	rows, err := src.Rows()
	if err != nil {
		return result, NewReadError(path, err)
	}
	defer rows.Close()

	sp := &splitter{
		source: path,
		opts:   opts,
		log:    log,
		state:  models.NewSplitState(),
		result: result,
		newChunk: func() (ChunkSink, error) {
			c, err := output.NewChunk(src.SheetName(), log)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		labels: func(row models.Row) ([]string, error) {
			return src.DisplayValues(row.Number, len(row.Cells))
		},
	}
	if err := sp.run(rows); err != nil {
		return result, err
	}
	log.Info().
		Int("files", len(result.Chunks)).
		Int("rows", sp.state.SourceRows).
		Msg("split complete")
	return result, nil
}

func openSource(path string, opts Options) (*parser.Source, error) {
	if !IsSupported(path) {
		return nil, NewReadError(path, ErrInvalidFormat)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewReadError(path, ErrFileNotFound)
	}
	src, err := parser.OpenSource(path, opts.Open)
	if err != nil {
		return nil, NewReadError(path, err)
	}
	return src, nil
}

// splitter holds the state of one split operation.
type splitter struct {
	source   string
	opts     Options
	log      zerolog.Logger
	state    *models.SplitState
	header   models.HeaderRecord
	result   *models.Result
	newChunk func() (ChunkSink, error)
	// labels renders the header row's cells as strings. Nil falls back to
	// the classified cell values.
	labels func(row models.Row) ([]string, error)
}

// run streams rows into successive output workbooks.
func (s *splitter) run(rows RowSource) error {
	chunk, err := s.newChunk()
	if err != nil {
		return NewWriteError(s.source, s.state.Sequence, err)
	}
	defer func() {
		chunk.Close()
	}()

	first := true
	for rows.Next() {
		row, err := rows.Row()
		if err != nil {
			return NewReadError(s.source, err)
		}
		s.state.SourceRows++

		if first {
			first = false
			if row.Number != 1 {
				return NewReadError(s.source, ErrMissingHeader)
			}
			if err := s.captureHeader(row); err != nil {
				return NewReadError(s.source, err)
			}
		} else if s.state.Full(s.opts.MaxRows) {
			if err := s.flush(chunk); err != nil {
				return err
			}
			chunk.Close()
			if chunk, err = s.newChunk(); err != nil {
				chunk = nopSink{}
				return NewWriteError(s.source, s.state.Sequence, err)
			}
			if err := chunk.WriteHeader(s.header); err != nil {
				return NewWriteError(s.source, s.state.Sequence, err)
			}
			s.state.RowCount = 1
		}

		if err := chunk.WriteRow(row, s.state.TotalColumns); err != nil {
			return NewWriteError(s.source, s.state.Sequence, err)
		}
		s.state.RowCount++
	}
	if err := rows.Err(); err != nil {
		return NewReadError(s.source, err)
	}

	if s.state.DataRows() > 0 {
		return s.flush(chunk)
	}
	return nil
}

func (s *splitter) captureHeader(row models.Row) error {
	var (
		labels []string
		err    error
	)
	if s.labels != nil {
		labels, err = s.labels(row)
		if err != nil {
			return err
		}
	} else {
		labels = cellLabels(row)
	}
	s.header = models.NewHeaderRecord(labels)
	s.state.TotalColumns = s.header.Len()
	s.result.Header = s.header.Labels()
	s.log.Debug().
		Int("columns", s.header.Len()).
		Strs("headers", labels).
		Msg("captured header row")
	return nil
}

// flush writes the current output workbook and records it in the result.
func (s *splitter) flush(chunk ChunkSink) error {
	seq := s.state.Sequence
	path := ChunkPath(s.source, s.opts.OutputDir, seq)
	if err := chunk.Flush(path); err != nil {
		return NewWriteError(s.source, seq, err)
	}
	s.state.NextSequence()
	info := models.ChunkInfo{Sequence: seq, Path: path, DataRows: s.state.DataRows()}
	s.result.Chunks = append(s.result.Chunks, info)
	s.log.Info().
		Int("chunk", seq).
		Str("path", path).
		Int("data_rows", info.DataRows).
		Msg("wrote chunk")
	return nil
}

// cellLabels renders classified cells as header labels.
func cellLabels(row models.Row) []string {
	labels := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		switch c.Kind {
		case models.CellNumber:
			labels[i] = strconv.FormatFloat(c.Number, 'f', -1, 64)
		case models.CellBoolean:
			labels[i] = strconv.FormatBool(c.Bool)
		case models.CellBlank:
		default:
			labels[i] = c.Text
		}
	}
	return labels
}

// nopSink stands in for a chunk that could not be created.
type nopSink struct{}

func (nopSink) WriteHeader(models.HeaderRecord) error { return nil }
func (nopSink) WriteRow(models.Row, int) error        { return nil }
func (nopSink) Flush(string) error                    { return nil }
func (nopSink) Close() error                          { return nil }
