package storage

import (
	"errors"
	"sync"

	"github.com/carson-networks/tally-server/internal/storage/invoice"
	"github.com/carson-networks/tally-server/internal/storage/ledger"
)

var ErrWriterClosed = errors.New("storage: writer already committed or rolled back")

type Writer struct {
	release func()
	once    sync.Once
	Ledger  *ledger.Writer
	Invoice *invoice.Writer
}

func NewWriter(ledgerTable *ledger.Table, invoiceTable *invoice.Table, release func()) *Writer {
	return &Writer{
		release: release,
		Ledger:  ledger.NewWriter(ledgerTable),
		Invoice: invoice.NewWriter(invoiceTable),
	}
}

func (w *Writer) Commit() error {
	return w.finish(func() {
		w.Ledger.Flush()
		w.Invoice.Flush()
	})
}

func (w *Writer) Rollback() error {
	return w.finish(func() {
		w.Ledger.Discard()
		w.Invoice.Discard()
	})
}

func (w *Writer) finish(apply func()) error {
	err := ErrWriterClosed
	w.once.Do(func() {
		apply()
		w.release()
		err = nil
	})
	return err
}
