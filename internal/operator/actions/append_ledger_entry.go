package actions

import (
	"context"

	"github.com/carson-networks/tally-server/internal/amount"
	"github.com/carson-networks/tally-server/internal/storage"
	"github.com/carson-networks/tally-server/internal/storage/ledger"
)

// AppendLedgerEntry adds one row to the end of the ledger, accruing its
// balance from the previous row.
type AppendLedgerEntry struct {
	Date        string
	Description string
	Debit       amount.Amount
	Credit      amount.Amount

	// Created is set once Perform succeeds.
	Created *ledger.Entry

	IAction
}

func (a *AppendLedgerEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	entry, err := appendLedgerRow(ctx, writer, a.Date, a.Description, a.Debit, a.Credit)
	if err != nil {
		return err
	}

	a.Created = entry
	return nil
}

// appendLedgerRow computes balance = previous balance + credit - debit,
// with a previous balance of zero on an empty ledger.
func appendLedgerRow(ctx context.Context, writer *storage.Writer, date, description string, debit, credit amount.Amount) (*ledger.Entry, error) {
	previous := amount.Zero()
	if last := writer.Ledger.Last(); last != nil {
		previous = last.Balance
	}

	return writer.Ledger.Insert(ctx, &ledger.EntryCreate{
		Date:        date,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Balance:     previous.Add(credit).Sub(debit),
	})
}
