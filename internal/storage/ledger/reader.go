package ledger

import (
	"context"
)

const defaultLimit = 20

// Reader is a point-in-time copy of the ledger table.
type Reader struct {
	rows []Entry
}

func NewReader(table *Table) *Reader {
	rows := make([]Entry, len(table.rows))
	copy(rows, table.rows)
	return &Reader{rows: rows}
}

func (r *Reader) Len() int {
	return len(r.rows)
}

// All returns every entry in insertion order.
func (r *Reader) All(ctx context.Context) ([]*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*Entry, len(r.rows))
	for i := range r.rows {
		entry := r.rows[i]
		result[i] = &entry
	}
	return result, nil
}

func (r *Reader) List(ctx context.Context, filter *EntryFilter) (*EntryListResult, error) {
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
		return &EntryListResult{Entries: nil, NextCursor: nil}, nil
	}

	end := offset + limit
	var nextCursor *EntryCursor
	if end < len(r.rows) {
		nextCursor = &EntryCursor{
			Position: end,
			Limit:    limit,
		}
	} else {
		end = len(r.rows)
	}

	result := make([]*Entry, 0, end-offset)
	for i := offset; i < end; i++ {
		entry := r.rows[i]
		result = append(result, &entry)
	}
	return &EntryListResult{Entries: result, NextCursor: nextCursor}, nil
}
