package service

import (
	"github.com/carson-networks/tally-server/internal/amount"
	"github.com/carson-networks/tally-server/internal/storage/invoice"
)

// InvoiceStatus is the settlement state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPaid   InvoiceStatus = "Paid"
	InvoiceStatusUnpaid InvoiceStatus = "Unpaid"
)

func (s InvoiceStatus) IsPaid() bool {
	return s == InvoiceStatusPaid
}

// InvoiceInput is what a caller supplies to append an invoice. There is no
// status field: new invoices are always unpaid.
type InvoiceInput struct {
	Date     string
	Customer string
	Amount   amount.Amount
}

// Invoice represents an invoice in the service layer.
type Invoice struct {
	ID       string
	Date     string
	Customer string
	Amount   amount.Amount
	Status   InvoiceStatus
}

// InvoiceCursor identifies a position in a paginated result set.
type InvoiceCursor struct {
	Position int
	Limit    int
}

func invoiceFromStorage(row *invoice.Invoice) Invoice {
	return Invoice{
		ID:       row.ID,
		Date:     row.Date,
		Customer: row.Customer,
		Amount:   row.Amount,
		Status:   InvoiceStatus(row.Status),
	}
}
