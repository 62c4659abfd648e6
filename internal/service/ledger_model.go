package service

import (
	"github.com/carson-networks/tally-server/internal/amount"
	"github.com/carson-networks/tally-server/internal/storage/ledger"
)

// LedgerEntryInput is what a caller supplies to append a ledger entry.
type LedgerEntryInput struct {
	Date        string
	Description string
	Debit       amount.Amount
	Credit      amount.Amount
}

// LedgerEntry represents a ledger entry in the service layer.
type LedgerEntry struct {
	ID          string
	Date        string
	Description string
	Debit       amount.Amount
	Credit      amount.Amount
	Balance     amount.Amount
}

// LedgerCursor identifies a position in a paginated result set.
type LedgerCursor struct {
	Position int
	Limit    int
}

func ledgerEntryFromStorage(row *ledger.Entry) LedgerEntry {
	return LedgerEntry{
		ID:          row.ID,
		Date:        row.Date,
		Description: row.Description,
		Debit:       row.Debit,
		Credit:      row.Credit,
		Balance:     row.Balance,
	}
}
