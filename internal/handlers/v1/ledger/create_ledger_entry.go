package ledger

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/tally-server/internal/handlers/v1/amountfield"
	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/service"
)

// CreateLedgerEntryBody is the request body for appending a ledger entry.
type CreateLedgerEntryBody struct {
	Date        string           `json:"date,omitempty" doc:"Entry date, e.g. 2023-10-04. Not validated"`
	Description string           `json:"description,omitempty" doc:"Entry description"`
	Debit       amountfield.Text `json:"debit,omitempty" doc:"Decimal debit as a string or number, defaults to 0. Non-numeric text becomes NaN"`
	Credit      amountfield.Text `json:"credit,omitempty" doc:"Decimal credit as a string or number, defaults to 0. Non-numeric text becomes NaN"`
}

// CreateLedgerEntryInput is the Huma input for appending a ledger entry.
type CreateLedgerEntryInput struct {
	Body CreateLedgerEntryBody
}

// CreateLedgerEntryOutput is the Huma output for appending a ledger entry.
type CreateLedgerEntryOutput struct {
	Status int
	Body   LedgerEntry
}

type ledgerAppender interface {
	AppendLedgerEntry(ctx context.Context, input service.LedgerEntryInput) (service.LedgerEntry, error)
}

// CreateLedgerEntryHandler handles POST /v1/ledger.
type CreateLedgerEntryHandler struct {
	LedgerService ledgerAppender
}

// NewCreateLedgerEntryHandler creates a new CreateLedgerEntryHandler.
func NewCreateLedgerEntryHandler(svc ledgerAppender) *CreateLedgerEntryHandler {
	return &CreateLedgerEntryHandler{LedgerService: svc}
}

// Register registers the create ledger entry endpoint with the Huma API.
func (h *CreateLedgerEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-ledger-entry",
		Method:        http.MethodPost,
		Path:          "/v1/ledger",
		Summary:       "Append a ledger entry",
		Description:   "Appends an entry to the end of the ledger. Its balance is the previous balance plus credit minus debit.",
		Tags:          []string{"Ledger"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateLedgerEntryInput(input *CreateLedgerEntryInput) service.LedgerEntryInput {
	return service.LedgerEntryInput{
		Date:        input.Body.Date,
		Description: input.Body.Description,
		Debit:       input.Body.Debit.Amount(),
		Credit:      input.Body.Credit.Amount(),
	}
}

func (h *CreateLedgerEntryHandler) handle(ctx context.Context, input *CreateLedgerEntryInput) (*CreateLedgerEntryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("appendLedgerEntryMs")
	}
	entry, err := h.LedgerService.AppendLedgerEntry(ctx, parseCreateLedgerEntryInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to append ledger entry", err)
	}

	if logData != nil {
		logData.AddData("ledgerEntryID", entry.ID)
	}

	return &CreateLedgerEntryOutput{
		Status: http.StatusCreated,
		Body:   toLedgerEntry(entry),
	}, nil
}
