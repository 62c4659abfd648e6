package invoice

import (
	"github.com/carson-networks/tally-server/internal/service"
)

// Invoice is the API response model for an invoice.
type Invoice struct {
	ID       string `json:"id" doc:"Sequential invoice ID, 1-based"`
	Date     string `json:"date" doc:"Invoice date as entered"`
	Customer string `json:"customer" doc:"Customer name"`
	Amount   string `json:"amount" doc:"Decimal amount"`
	Status   string `json:"status" enum:"Paid,Unpaid" doc:"Settlement status"`
}

// InvoiceCursor is the position of the next page.
type InvoiceCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

func toInvoice(inv service.Invoice) Invoice {
	return Invoice{
		ID:       inv.ID,
		Date:     inv.Date,
		Customer: inv.Customer,
		Amount:   inv.Amount.String(),
		Status:   string(inv.Status),
	}
}
