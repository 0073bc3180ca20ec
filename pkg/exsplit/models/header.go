package models

// HeaderRecord holds the column labels captured from the first source row.
// It is immutable once built.
type HeaderRecord struct {
	labels []string
}

// NewHeaderRecord copies labels into a new HeaderRecord.
func NewHeaderRecord(labels []string) HeaderRecord {
	c := make([]string, len(labels))
	copy(c, labels)
	return HeaderRecord{labels: c}
}

// Len returns the number of columns, which fixes the width of every output row.
func (h HeaderRecord) Len() int {
	return len(h.labels)
}

// Labels returns a copy of the column labels in column order.
func (h HeaderRecord) Labels() []string {
	c := make([]string, len(h.labels))
	copy(c, h.labels)
	return c
}
