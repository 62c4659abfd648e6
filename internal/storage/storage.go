package storage

import (
	"context"
	"sync"

	"github.com/carson-networks/tally-server/internal/storage/invoice"
	"github.com/carson-networks/tally-server/internal/storage/ledger"
)

// Storage owns the ledger and invoice tables for the lifetime of the process.
// Any number of readers may hold snapshots; a single Writer holds the write
// lock from Write until Commit or Rollback.
type Storage struct {
	mu       sync.RWMutex
	ledger   *ledger.Table
	invoices *invoice.Table
}

func NewStorage() *Storage {
	return &Storage{
		ledger:   ledger.NewTable(),
		invoices: invoice.NewTable(),
	}
}

// Read returns a consistent snapshot of both tables.
func (s *Storage) Read(ctx context.Context) (*Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return NewReader(s.ledger, s.invoices), nil
}

// Write opens a write transaction. The caller must Commit or Rollback it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	return NewWriter(s.ledger, s.invoices, s.mu.Unlock), nil
}
