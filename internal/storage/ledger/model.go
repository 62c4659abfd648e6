package ledger

import (
	"github.com/carson-networks/tally-server/internal/amount"
)

// Entry represents a ledger row.
type Entry struct {
	ID          string
	Date        string
	Description string
	Debit       amount.Amount
	Credit      amount.Amount
	Balance     amount.Amount
}

// EntryCreate is the input for inserting a ledger row.
// Balance is derived by the caller; the table only assigns the ID.
type EntryCreate struct {
	Date        string
	Description string
	Debit       amount.Amount
	Credit      amount.Amount
	Balance     amount.Amount
}

// EntryFilter specifies the page to list.
type EntryFilter struct {
	Limit  int
	Offset int
}

// EntryCursor identifies a position in a paginated result set.
type EntryCursor struct {
	Position int
	Limit    int
}

// EntryListResult contains a page of entries and an optional next cursor.
type EntryListResult struct {
	Entries    []*Entry
	NextCursor *EntryCursor
}

// Table holds ledger rows in insertion order.
// It is not safe for concurrent use; storage.Storage guards it.
type Table struct {
	rows []Entry
}

func NewTable() *Table {
	return &Table{}
}
