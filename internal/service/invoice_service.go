package service

import (
	"context"

	"github.com/carson-networks/tally-server/internal/operator/actions"
	"github.com/carson-networks/tally-server/internal/storage"
	"github.com/carson-networks/tally-server/internal/storage/invoice"
)

// InvoiceService handles invoice business logic.
type InvoiceService struct {
	storage  *storage.Storage
	operator processor
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(store *storage.Storage, op processor) *InvoiceService {
	return &InvoiceService{storage: store, operator: op}
}

// AppendInvoice appends an unpaid invoice and returns it with its assigned ID.
func (s *InvoiceService) AppendInvoice(ctx context.Context, input InvoiceInput) (Invoice, error) {
	action := &actions.AppendInvoice{
		Date:     input.Date,
		Customer: input.Customer,
		Amount:   input.Amount,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Invoice{}, err
	}

	return invoiceFromStorage(action.Created), nil
}

// Invoices returns every invoice in insertion order.
func (s *InvoiceService) Invoices(ctx context.Context) ([]Invoice, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := reader.Invoices.All(ctx)
	if err != nil {
		return nil, err
	}

	invoices := make([]Invoice, len(rows))
	for i, row := range rows {
		invoices[i] = invoiceFromStorage(row)
	}
	return invoices, nil
}

// ListInvoices returns a page of invoices using cursor pagination.
func (s *InvoiceService) ListInvoices(ctx context.Context, cursor *InvoiceCursor) ([]Invoice, *InvoiceCursor, error) {
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

	result, err := reader.Invoices.List(ctx, &invoice.InvoiceFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(result.Invoices) == 0 {
		return nil, nil, nil
	}

	var nextCursor *InvoiceCursor
	if result.NextCursor != nil {
		nextCursor = &InvoiceCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	invoices := make([]Invoice, len(result.Invoices))
	for i, row := range result.Invoices {
		invoices[i] = invoiceFromStorage(row)
	}
	return invoices, nextCursor, nil
}
