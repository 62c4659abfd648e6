package invoice

import (
	"github.com/carson-networks/tally-server/internal/amount"
)

type Status string

const (
	StatusPaid   Status = "Paid"
	StatusUnpaid Status = "Unpaid"
)

// Invoice represents an invoice row.
type Invoice struct {
	ID       string
	Date     string
	Customer string
	Amount   amount.Amount
	Status   Status
}

// InvoiceCreate is the input for inserting an invoice row.
type InvoiceCreate struct {
	Date     string
	Customer string
	Amount   amount.Amount
	Status   Status
}

// InvoiceFilter specifies the page to list.
type InvoiceFilter struct {
	Limit  int
	Offset int
}

// InvoiceCursor identifies a position in a paginated result set.
type InvoiceCursor struct {
	Position int
	Limit    int
}

// InvoiceListResult contains a page of invoices and an optional next cursor.
type InvoiceListResult struct {
	Invoices   []*Invoice
	NextCursor *InvoiceCursor
}

// Table holds invoice rows in insertion order.
// It is not safe for concurrent use; storage.Storage guards it.
type Table struct {
	rows []Invoice
}

func NewTable() *Table {
	return &Table{}
}
