package invoice

import (
	"context"
)

const defaultLimit = 20

// Reader is a point-in-time copy of the invoice table.
type Reader struct {
	rows []Invoice
}

func NewReader(table *Table) *Reader {
	rows := make([]Invoice, len(table.rows))
	copy(rows, table.rows)
	return &Reader{rows: rows}
}

func (r *Reader) Len() int {
	return len(r.rows)
}

// All returns every invoice in insertion order.
func (r *Reader) All(ctx context.Context) ([]*Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*Invoice, len(r.rows))
	for i := range r.rows {
		inv := r.rows[i]
		result[i] = &inv
	}
	return result, nil
}

func (r *Reader) List(ctx context.Context, filter *InvoiceFilter) (*InvoiceListResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := defaultLimit
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		if filter.Offset > 0 {
			offset = filter.Offset
		}
	}

	if offset >= len(r.rows) {
		return &InvoiceListResult{Invoices: nil, NextCursor: nil}, nil
	}

	end := offset + limit
	var nextCursor *InvoiceCursor
	if end < len(r.rows) {
		nextCursor = &InvoiceCursor{
			Position: end,
			Limit:    limit,
		}
	} else {
		end = len(r.rows)
	}

	result := make([]*Invoice, 0, end-offset)
	for i := offset; i < end; i++ {
		inv := r.rows[i]
		result = append(result, &inv)
	}
	return &InvoiceListResult{Invoices: result, NextCursor: nextCursor}, nil
}
