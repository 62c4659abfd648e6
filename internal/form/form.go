// Package form holds the input buffers behind the two add-record forms.
//
// A buffer mirrors the on-screen fields. Numeric fields are coerced on every
// edit, so non-numeric text is kept as NaN rather than rejected. Submitting a
// buffer appends one record and then clears the buffer.
package form

import (
	"context"

	"github.com/carson-networks/tally-server/internal/amount"
	"github.com/carson-networks/tally-server/internal/service"
)

const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldDebit       = "debit"
	FieldCredit      = "credit"
	FieldCustomer    = "customer"
	FieldAmount      = "amount"
)

type ledgerAppender interface {
	AppendLedgerEntry(ctx context.Context, input service.LedgerEntryInput) (service.LedgerEntry, error)
}

type invoiceAppender interface {
	AppendInvoice(ctx context.Context, input service.InvoiceInput) (service.Invoice, error)
}

// EntryForm is the ledger entry buffer.
type EntryForm struct {
	Date        string
	Description string
	Debit       amount.Amount
	Credit      amount.Amount
}

func NewEntryForm() EntryForm {
	return EntryForm{
		Debit:  amount.Zero(),
		Credit: amount.Zero(),
	}
}

// Set updates one field from its raw text. Unknown fields are ignored.
func (f *EntryForm) Set(field, text string) {
	switch field {
	case FieldDate:
		f.Date = text
	case FieldDescription:
		f.Description = text
	case FieldDebit:
		f.Debit = amount.Parse(text)
	case FieldCredit:
		f.Credit = amount.Parse(text)
	}
}

func (f *EntryForm) Reset() {
	*f = NewEntryForm()
}

// Submit appends the buffer as a ledger entry. The buffer is reset only when
// the append succeeds.
func (f *EntryForm) Submit(ctx context.Context, ledger ledgerAppender) (service.LedgerEntry, error) {
	entry, err := ledger.AppendLedgerEntry(ctx, service.LedgerEntryInput{
		Date:        f.Date,
		Description: f.Description,
		Debit:       f.Debit,
		Credit:      f.Credit,
	})
	if err != nil {
		return service.LedgerEntry{}, err
	}

	f.Reset()
	return entry, nil
}

// InvoiceForm is the invoice buffer. It has no status field.
type InvoiceForm struct {
	Date     string
	Customer string
	Amount   amount.Amount
}

func NewInvoiceForm() InvoiceForm {
	return InvoiceForm{Amount: amount.Zero()}
}

func (f *InvoiceForm) Set(field, text string) {
	switch field {
	case FieldDate:
		f.Date = text
	case FieldCustomer:
		f.Customer = text
	case FieldAmount:
		f.Amount = amount.Parse(text)
	}
}

func (f *InvoiceForm) Reset() {
	*f = NewInvoiceForm()
}

func (f *InvoiceForm) Submit(ctx context.Context, invoices invoiceAppender) (service.Invoice, error) {
	inv, err := invoices.AppendInvoice(ctx, service.InvoiceInput{
		Date:     f.Date,
		Customer: f.Customer,
		Amount:   f.Amount,
	})
	if err != nil {
		return service.Invoice{}, err
	}

	f.Reset()
	return inv, nil
}
