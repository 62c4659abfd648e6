package ledger

import (
	"context"
	"strconv"
)

// Writer stages inserts against a table. Staged rows become visible to
// readers only after Flush.
type Writer struct {
	table  *Table
	staged []Entry
}

func NewWriter(table *Table) *Writer {
	return &Writer{table: table}
}

// Last returns the most recent row, staged rows included, or nil when the ledger is empty.
func (w *Writer) Last() *Entry {
	if n := len(w.staged); n > 0 {
		entry := w.staged[n-1]
		return &entry
	}
	if n := len(w.table.rows); n > 0 {
		entry := w.table.rows[n-1]
		return &entry
	}
	return nil
}

// Insert appends a row with the next sequential ID.
func (w *Writer) Insert(ctx context.Context, create *EntryCreate) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := Entry{
		ID:          strconv.Itoa(len(w.table.rows) + len(w.staged) + 1),
		Date:        create.Date,
		Description: create.Description,
		Debit:       create.Debit,
		Credit:      create.Credit,
		Balance:     create.Balance,
	}
	w.staged = append(w.staged, entry)
	return &entry, nil
}

func (w *Writer) Flush() {
	w.table.rows = append(w.table.rows, w.staged...)
	w.staged = nil
}

func (w *Writer) Discard() {
	w.staged = nil
}
