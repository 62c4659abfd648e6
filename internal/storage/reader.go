package storage

import (
	"github.com/carson-networks/tally-server/internal/storage/invoice"
	"github.com/carson-networks/tally-server/internal/storage/ledger"
)

type Reader struct {
	Ledger   *ledger.Reader
	Invoices *invoice.Reader
}

func NewReader(ledgerTable *ledger.Table, invoiceTable *invoice.Table) *Reader {
	return &Reader{
		Ledger:   ledger.NewReader(ledgerTable),
		Invoices: invoice.NewReader(invoiceTable),
	}
}
