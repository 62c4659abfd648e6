package invoice

import (
	"context"
	"strconv"
)

// Writer stages inserts against a table until Flush.
type Writer struct {
	table  *Table
	staged []Invoice
}

func NewWriter(table *Table) *Writer {
	return &Writer{table: table}
}

// Insert appends an invoice with the next sequential ID and the given status.
func (w *Writer) Insert(ctx context.Context, create *InvoiceCreate) (*Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inv := Invoice{
		ID:       strconv.Itoa(len(w.table.rows) + len(w.staged) + 1),
		Date:     create.Date,
		Customer: create.Customer,
		Amount:   create.Amount,
		Status:   create.Status,
	}
	w.staged = append(w.staged, inv)
	return &inv, nil
}

func (w *Writer) Flush() {
	w.table.rows = append(w.table.rows, w.staged...)
	w.staged = nil
}

func (w *Writer) Discard() {
	w.staged = nil
}
