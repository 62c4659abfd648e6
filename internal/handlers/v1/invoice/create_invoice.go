package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/tally-server/internal/handlers/v1/amountfield"
	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/service"
)

// CreateInvoiceBody is the request body for appending an invoice.
// There is no status: new invoices are always Unpaid.
type CreateInvoiceBody struct {
	Date     string           `json:"date,omitempty" doc:"Invoice date, e.g. 2023-10-10. Not validated"`
	Customer string           `json:"customer,omitempty" doc:"Customer name"`
	Amount   amountfield.Text `json:"amount,omitempty" doc:"Decimal amount as a string or number, defaults to 0. Non-numeric text becomes NaN"`
}

// CreateInvoiceInput is the Huma input for appending an invoice.
type CreateInvoiceInput struct {
	Body CreateInvoiceBody
}

// CreateInvoiceOutput is the Huma output for appending an invoice.
type CreateInvoiceOutput struct {
	Status int
	Body   Invoice
}

type invoiceAppender interface {
	AppendInvoice(ctx context.Context, input service.InvoiceInput) (service.Invoice, error)
}

// CreateInvoiceHandler handles POST /v1/invoice.
type CreateInvoiceHandler struct {
	InvoiceService invoiceAppender
}

// NewCreateInvoiceHandler creates a new CreateInvoiceHandler.
func NewCreateInvoiceHandler(svc invoiceAppender) *CreateInvoiceHandler {
	return &CreateInvoiceHandler{InvoiceService: svc}
}

// Register registers the create invoice endpoint with the Huma API.
func (h *CreateInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-invoice",
		Method:        http.MethodPost,
		Path:          "/v1/invoice",
		Summary:       "Append an invoice",
		Description:   "Appends an unpaid invoice to the end of the invoice list.",
		Tags:          []string{"Invoices"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateInvoiceInput(input *CreateInvoiceInput) service.InvoiceInput {
	return service.InvoiceInput{
		Date:     input.Body.Date,
		Customer: input.Body.Customer,
		Amount:   input.Body.Amount.Amount(),
	}
}

func (h *CreateInvoiceHandler) handle(ctx context.Context, input *CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("appendInvoiceMs")
	}
	inv, err := h.InvoiceService.AppendInvoice(ctx, parseCreateInvoiceInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to append invoice", err)
	}

	if logData != nil {
		logData.AddData("invoiceID", inv.ID)
	}

	return &CreateInvoiceOutput{
		Status: http.StatusCreated,
		Body:   toInvoice(inv),
	}, nil
}
