package service

import (
	"context"

	"github.com/carson-networks/tally-server/internal/operator/actions"
	"github.com/carson-networks/tally-server/internal/storage"
	"github.com/carson-networks/tally-server/internal/storage/ledger"
)

const defaultLimit = 20

// LedgerService handles ledger business logic.
type LedgerService struct {
	storage  *storage.Storage
	operator processor
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage, op processor) *LedgerService {
	return &LedgerService{storage: store, operator: op}
}

// AppendLedgerEntry appends an entry to the ledger and returns it with its
// assigned ID and accrued balance. Input is taken as-is, without validation.
func (s *LedgerService) AppendLedgerEntry(ctx context.Context, input LedgerEntryInput) (LedgerEntry, error) {
	action := &actions.AppendLedgerEntry{
		Date:        input.Date,
		Description: input.Description,
		Debit:       input.Debit,
		Credit:      input.Credit,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return LedgerEntry{}, err
	}

	return ledgerEntryFromStorage(action.Created), nil
}

// LedgerEntries returns the whole ledger in insertion order.
func (s *LedgerService) LedgerEntries(ctx context.Context) ([]LedgerEntry, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := reader.Ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LedgerEntry, len(rows))
	for i, row := range rows {
		entries[i] = ledgerEntryFromStorage(row)
	}
	return entries, nil
}

// ListLedgerEntries returns a page of entries using cursor pagination.
func (s *LedgerService) ListLedgerEntries(ctx context.Context, cursor *LedgerCursor) ([]LedgerEntry, *LedgerCursor, error) {
	limit := defaultLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, nil, err
	}

	result, err := reader.Ledger.List(ctx, &ledger.EntryFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(result.Entries) == 0 {
		return nil, nil, nil
	}

	var nextCursor *LedgerCursor
	if result.NextCursor != nil {
		nextCursor = &LedgerCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	entries := make([]LedgerEntry, len(result.Entries))
	for i, row := range result.Entries {
		entries[i] = ledgerEntryFromStorage(row)
	}
	return entries, nextCursor, nil
}
