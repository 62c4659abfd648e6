package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/service"
)

// ListInvoicesInput is the Huma input for listing invoices.
type ListInvoicesInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Page size"`
}

// ListInvoicesResponseBody is the response body for listing invoices.
type ListInvoicesResponseBody struct {
	Invoices   []Invoice      `json:"invoices" doc:"Page of invoices in insertion order"`
	NextCursor *InvoiceCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListInvoicesOutput is the Huma output for listing invoices.
type ListInvoicesOutput struct {
	Body ListInvoicesResponseBody
}

type invoiceLister interface {
	ListInvoices(ctx context.Context, cursor *service.InvoiceCursor) ([]service.Invoice, *service.InvoiceCursor, error)
}

// ListInvoicesHandler handles GET /v1/invoices.
type ListInvoicesHandler struct {
	InvoiceService invoiceLister
}

// NewListInvoicesHandler creates a new ListInvoicesHandler.
func NewListInvoicesHandler(svc invoiceLister) *ListInvoicesHandler {
	return &ListInvoicesHandler{InvoiceService: svc}
}

// Register registers the list invoices endpoint with the Huma API.
func (h *ListInvoicesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-invoices",
		Method:      http.MethodGet,
		Path:        "/v1/invoices",
		Summary:     "List invoices",
		Description: "Returns a page of invoices in insertion order.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *ListInvoicesHandler) handle(ctx context.Context, input *ListInvoicesInput) (*ListInvoicesOutput, error) {
	logData := logging.GetLogData(ctx)

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}
	cursor := &service.InvoiceCursor{
		Position: input.Position,
		Limit:    limit,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listInvoicesMs")
	}
	invoices, next, err := h.InvoiceService.ListInvoices(ctx, cursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list invoices", err)
	}

	if logData != nil {
		logData.AddData("invoiceCount", len(invoices))
	}

	resp := ListInvoicesResponseBody{
		Invoices: make([]Invoice, len(invoices)),
	}
	for i, inv := range invoices {
		resp.Invoices[i] = toInvoice(inv)
	}

	if next != nil {
		resp.NextCursor = &InvoiceCursor{
			Position: next.Position,
			Limit:    next.Limit,
		}
	}

	return &ListInvoicesOutput{Body: resp}, nil
}
