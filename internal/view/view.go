// Package view renders the bookkeeping page: the two add-record forms and
// the ledger and invoice tables.
package view

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/carson-networks/tally-server/internal/form"
	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Page is everything one render needs. Rendering never changes it.
type Page struct {
	Ledger      []service.LedgerEntry
	Invoices    []service.Invoice
	EntryForm   form.EntryForm
	InvoiceForm form.InvoiceForm
}

func Render(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}

type ledgerService interface {
	AppendLedgerEntry(ctx context.Context, input service.LedgerEntryInput) (service.LedgerEntry, error)
	LedgerEntries(ctx context.Context) ([]service.LedgerEntry, error)
}

type invoiceService interface {
	AppendInvoice(ctx context.Context, input service.InvoiceInput) (service.Invoice, error)
	Invoices(ctx context.Context) ([]service.Invoice, error)
}

// Handler serves the page and accepts the two form posts.
type Handler struct {
	Ledger   ledgerService
	Invoices invoiceService
}

func NewHandler(ledger ledgerService, invoices invoiceService) *Handler {
	return &Handler{Ledger: ledger, Invoices: invoices}
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	return h.render(w, req, logData, form.NewEntryForm(), form.NewInvoiceForm())
}

// AddEntry handles POST /ledger.
func (h *Handler) AddEntry(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if err := req.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	entryForm := form.NewEntryForm()
	for _, field := range []string{form.FieldDate, form.FieldDescription, form.FieldDebit, form.FieldCredit} {
		if _, ok := req.PostForm[field]; ok {
			entryForm.Set(field, req.PostForm.Get(field))
		}
	}

	stopTimer := logData.AddTiming("appendLedgerEntryMs")
	entry, err := entryForm.Submit(req.Context(), h.Ledger)
	stopTimer()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	logData.AddData("ledgerEntryID", entry.ID)

	return h.render(w, req, logData, entryForm, form.NewInvoiceForm())
}

// AddInvoice handles POST /invoices.
func (h *Handler) AddInvoice(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if err := req.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	invoiceForm := form.NewInvoiceForm()
	for _, field := range []string{form.FieldDate, form.FieldCustomer, form.FieldAmount} {
		if _, ok := req.PostForm[field]; ok {
			invoiceForm.Set(field, req.PostForm.Get(field))
		}
	}

	stopTimer := logData.AddTiming("appendInvoiceMs")
	inv, err := invoiceForm.Submit(req.Context(), h.Invoices)
	stopTimer()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	logData.AddData("invoiceID", inv.ID)

	return h.render(w, req, logData, form.NewEntryForm(), invoiceForm)
}

func (h *Handler) render(w http.ResponseWriter, req *http.Request, logData *logging.LogData, entryForm form.EntryForm, invoiceForm form.InvoiceForm) error {
	entries, err := h.Ledger.LedgerEntries(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	invoices, err := h.Invoices.Invoices(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	// Render to a buffer first so a template failure can still produce a 500.
	var buf bytes.Buffer
	err = Render(&buf, Page{
		Ledger:      entries,
		Invoices:    invoices,
		EntryForm:   entryForm,
		InvoiceForm: invoiceForm,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	logData.AddData("ledgerEntryCount", len(entries))
	logData.AddData("invoiceCount", len(invoices))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = buf.WriteTo(w)
	return err
}
