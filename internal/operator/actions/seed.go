package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/tally-server/internal/seed"
	"github.com/carson-networks/tally-server/internal/storage"
	"github.com/carson-networks/tally-server/internal/storage/invoice"
)

// Seed loads starting rows in one transaction. Ledger balances accrue exactly
// as they do for appended entries; invoices keep their seeded status.
type Seed struct {
	Data seed.Data

	IAction
}

func (s *Seed) Perform(ctx context.Context, writer *storage.Writer) error {
	for i, row := range s.Data.Ledger {
		_, err := appendLedgerRow(ctx, writer, row.Date, row.Description, row.Debit.Value(), row.Credit.Value())
		if err != nil {
			return fmt.Errorf("seed ledger row %d: %w", i+1, err)
		}
	}

	for i, row := range s.Data.Invoices {
		_, err := writer.Invoice.Insert(ctx, &invoice.InvoiceCreate{
			Date:     row.Date,
			Customer: row.Customer,
			Amount:   row.Amount.Value(),
			Status:   invoice.Status(row.Status),
		})
		if err != nil {
			return fmt.Errorf("seed invoice %d: %w", i+1, err)
		}
	}

	return nil
}
