package invoice

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/tally-server/internal/amount"
	"github.com/carson-networks/tally-server/internal/service"
)

func newListTestAPI(t *testing.T, svc invoiceLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListInvoicesHandler(svc).Register(api)
	return api
}

func TestHTTP_ListInvoices_Success(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	mockSvc.On("ListInvoices", mock.Anything, &service.InvoiceCursor{Position: 1, Limit: 20}).
		Return([]service.Invoice{
			{ID: "2", Date: "2023-10-02", Customer: "Customer B", Amount: amount.FromInt(3000), Status: service.InvoiceStatusUnpaid},
			{ID: "3", Date: "2023-10-03", Customer: "Customer C", Amount: amount.FromInt(7000), Status: service.InvoiceStatusPaid},
		}, nil, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/invoices?position=1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListInvoicesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []Invoice{
		{ID: "2", Date: "2023-10-02", Customer: "Customer B", Amount: "3000", Status: "Unpaid"},
		{ID: "3", Date: "2023-10-03", Customer: "Customer C", Amount: "7000", Status: "Paid"},
	}, body.Invoices)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListInvoices_NegativePosition(t *testing.T) {
	mockSvc := new(mockInvoiceService)

	resp := newListTestAPI(t, mockSvc).Get("/v1/invoices?position=-1")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListInvoices")
}
