package service

import (
	"context"

	"github.com/carson-networks/tally-server/internal/operator/actions"
	"github.com/carson-networks/tally-server/internal/seed"
	"github.com/carson-networks/tally-server/internal/storage"
)

// processor serialises write actions against storage.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Ledger   *LedgerService
	Invoices *InvoiceService

	operator processor
}

// NewService creates a new Service over the given storage. Writes go through op.
func NewService(store *storage.Storage, op processor) *Service {
	return &Service{
		Ledger:   NewLedgerService(store, op),
		Invoices: NewInvoiceService(store, op),
		operator: op,
	}
}

// Seed appends the seed rows to both stores in one write.
func (s *Service) Seed(ctx context.Context, data seed.Data) error {
	return s.operator.Process(ctx, &actions.Seed{Data: data})
}
