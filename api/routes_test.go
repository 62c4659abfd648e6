package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/tally-server/internal/handlers/v1/invoice"
	"github.com/carson-networks/tally-server/internal/handlers/v1/ledger"
	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/operator"
	"github.com/carson-networks/tally-server/internal/seed"
	"github.com/carson-networks/tally-server/internal/service"
	"github.com/carson-networks/tally-server/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logging.SetupLogging(logrus.PanicLevel)

	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	svc := service.NewService(store, delegator)
	require.NoError(t, svc.Seed(context.Background(), seed.Default()))

	rest := &Rest{Logger: logger, Service: svc, AllowedOrigins: []string{"*"}}
	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)
	return server
}

func TestStatus(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatus_RejectsOtherMethods(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/status", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIAndViewShareStore(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/v1/invoice", "application/json",
		strings.NewReader(`{"date":"2023-10-10","customer":"Acme","amount":"1200"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created invoice.Invoice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, invoice.Invoice{ID: "4", Date: "2023-10-10", Customer: "Acme", Amount: "1200", Status: "Unpaid"}, created)

	page, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer page.Body.Close()

	html, err := io.ReadAll(page.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), `id="invoice-4"><td>2023-10-10</td><td>Acme</td><td>1200</td>`)
}

func TestLedgerAccruesAcrossAPI(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/v1/ledger", "application/json",
		strings.NewReader(`{"date":"2023-10-04","description":"Rent","debit":"2000"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(server.URL + "/v1/ledger")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ledger.ListLedgerEntriesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	var balances []string
	for _, e := range body.Entries {
		balances = append(balances, e.Balance)
	}
	assert.Equal(t, []string{"10000", "5000", "12000", "10000"}, balances)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/v1/ledger", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
