package ledger

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/service"
)

// ListLedgerEntriesInput is the Huma input for listing ledger entries.
type ListLedgerEntriesInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Page size"`
}

// ListLedgerEntriesResponseBody is the response body for listing ledger entries.
type ListLedgerEntriesResponseBody struct {
	Entries    []LedgerEntry `json:"entries" doc:"Page of entries in insertion order"`
	NextCursor *LedgerCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListLedgerEntriesOutput is the Huma output for listing ledger entries.
type ListLedgerEntriesOutput struct {
	Body ListLedgerEntriesResponseBody
}

type ledgerLister interface {
	ListLedgerEntries(ctx context.Context, cursor *service.LedgerCursor) ([]service.LedgerEntry, *service.LedgerCursor, error)
}

// ListLedgerEntriesHandler handles GET /v1/ledger.
type ListLedgerEntriesHandler struct {
	LedgerService ledgerLister
}

// NewListLedgerEntriesHandler creates a new ListLedgerEntriesHandler.
func NewListLedgerEntriesHandler(svc ledgerLister) *ListLedgerEntriesHandler {
	return &ListLedgerEntriesHandler{LedgerService: svc}
}

// Register registers the list ledger entries endpoint with the Huma API.
func (h *ListLedgerEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-ledger-entries",
		Method:      http.MethodGet,
		Path:        "/v1/ledger",
		Summary:     "List ledger entries",
		Description: "Returns a page of ledger entries in insertion order.",
		Tags:        []string{"Ledger"},
	}, h.handle)
}

func parseListLedgerEntriesInput(input *ListLedgerEntriesInput) *service.LedgerCursor {
	limit := input.Limit
	if limit == 0 {
		limit = 20
	}
	return &service.LedgerCursor{
		Position: input.Position,
		Limit:    limit,
	}
}

func (h *ListLedgerEntriesHandler) handle(ctx context.Context, input *ListLedgerEntriesInput) (*ListLedgerEntriesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listLedgerEntriesMs")
	}
	entries, next, err := h.LedgerService.ListLedgerEntries(ctx, parseListLedgerEntriesInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list ledger entries", err)
	}

	if logData != nil {
		logData.AddData("ledgerEntryCount", len(entries))
	}

	resp := ListLedgerEntriesResponseBody{
		Entries: make([]LedgerEntry, len(entries)),
	}
	for i, entry := range entries {
		resp.Entries[i] = toLedgerEntry(entry)
	}

	if next != nil {
		resp.NextCursor = &LedgerCursor{
			Position: next.Position,
			Limit:    next.Limit,
		}
	}

	return &ListLedgerEntriesOutput{Body: resp}, nil
}
