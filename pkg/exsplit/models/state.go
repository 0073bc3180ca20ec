package models

// SplitState carries the counters of one split operation.
type SplitState struct {
	// RowCount is the number of rows in the current output workbook,
	// header included.
	RowCount int
	// Sequence is the number the next flushed output workbook receives.
	// It starts at 1.
	Sequence int
	// TotalColumns is fixed from the header length.
	TotalColumns int
	// SourceRows counts the source rows consumed so far.
	SourceRows int
}

// NewSplitState returns the state for a fresh split.
func NewSplitState() *SplitState {
	return &SplitState{Sequence: 1}
}

// DataRows returns the number of data rows in the current output workbook.
func (s *SplitState) DataRows() int {
	if s.RowCount == 0 {
		return 0
	}
	return s.RowCount - 1
}

// Full reports whether the current output workbook holds maxRows data rows.
func (s *SplitState) Full(maxRows int) bool {
	return s.RowCount >= maxRows+1
}

// NextSequence returns the number for the output workbook being flushed and
// advances the counter.
func (s *SplitState) NextSequence() int {
	seq := s.Sequence
	s.Sequence++
	return seq
}
