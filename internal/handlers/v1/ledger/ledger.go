package ledger

import (
	"github.com/carson-networks/tally-server/internal/service"
)

// LedgerEntry is the API response model for a ledger entry.
// Amounts are strings so that NaN survives JSON encoding.
type LedgerEntry struct {
	ID          string `json:"id" doc:"Sequential entry ID, 1-based"`
	Date        string `json:"date" doc:"Entry date as entered"`
	Description string `json:"description" doc:"Entry description"`
	Debit       string `json:"debit" doc:"Decimal debit"`
	Credit      string `json:"credit" doc:"Decimal credit"`
	Balance     string `json:"balance" doc:"Running balance after this entry"`
}

// LedgerCursor is the position of the next page.
type LedgerCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

func toLedgerEntry(entry service.LedgerEntry) LedgerEntry {
	return LedgerEntry{
		ID:          entry.ID,
		Date:        entry.Date,
		Description: entry.Description,
		Debit:       entry.Debit.String(),
		Credit:      entry.Credit.String(),
		Balance:     entry.Balance.String(),
	}
}
