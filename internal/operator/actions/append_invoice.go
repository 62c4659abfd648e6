package actions

import (
	"context"

	"github.com/carson-networks/tally-server/internal/amount"
	"github.com/carson-networks/tally-server/internal/storage"
	"github.com/carson-networks/tally-server/internal/storage/invoice"
)

// AppendInvoice adds one invoice to the end of the list. New invoices are always unpaid.
type AppendInvoice struct {
	Date     string
	Customer string
	Amount   amount.Amount

	Created *invoice.Invoice

	IAction
}

func (a *AppendInvoice) Perform(ctx context.Context, writer *storage.Writer) error {
	inv, err := writer.Invoice.Insert(ctx, &invoice.InvoiceCreate{
		Date:     a.Date,
		Customer: a.Customer,
		Amount:   a.Amount,
		Status:   invoice.StatusUnpaid,
	})
	if err != nil {
		return err
	}

	a.Created = inv
	return nil
}
