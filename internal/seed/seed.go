// Package seed provides the rows a fresh store starts with, either the
// built-in demo rows or rows read from a YAML file.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carson-networks/tally-server/internal/amount"
)

const (
	StatusPaid   = "Paid"
	StatusUnpaid = "Unpaid"
)

// Data is the full set of seed rows. Ledger balances are not part of a seed;
// they are accrued on insert.
type Data struct {
	Ledger   []LedgerRow  `yaml:"ledger"`
	Invoices []InvoiceRow `yaml:"invoices"`
}

type LedgerRow struct {
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Debit       Amount `yaml:"debit"`
	Credit      Amount `yaml:"credit"`
}

type InvoiceRow struct {
	Date     string `yaml:"date"`
	Customer string `yaml:"customer"`
	Amount   Amount `yaml:"amount"`
	Status   string `yaml:"status"`
}

// Amount decodes any scalar through amount.Parse so seed files accept
// both `1200` and `"1200.50"`.
type Amount amount.Amount

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	*a = Amount(amount.Parse(node.Value))
	return nil
}

func (a Amount) Value() amount.Amount {
	return amount.Amount(a)
}

// Default returns the demo rows.
func Default() Data {
	return Data{
		Ledger: []LedgerRow{
			{Date: "2023-10-01", Description: "Initial Balance", Debit: Amount(amount.Zero()), Credit: Amount(amount.FromInt(10000))},
			{Date: "2023-10-02", Description: "Purchase of Goods", Debit: Amount(amount.FromInt(5000)), Credit: Amount(amount.Zero())},
			{Date: "2023-10-03", Description: "Sales Revenue", Debit: Amount(amount.Zero()), Credit: Amount(amount.FromInt(7000))},
		},
		Invoices: []InvoiceRow{
			{Date: "2023-10-01", Customer: "Customer A", Amount: Amount(amount.FromInt(5000)), Status: StatusPaid},
			{Date: "2023-10-02", Customer: "Customer B", Amount: Amount(amount.FromInt(3000)), Status: StatusUnpaid},
			{Date: "2023-10-03", Customer: "Customer C", Amount: Amount(amount.FromInt(7000)), Status: StatusPaid},
		},
	}
}

// Load reads seed rows from a YAML file. An empty path yields Default.
func Load(path string) (Data, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML seed rows. Missing amounts are zero and a missing
// invoice status is Unpaid.
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parse seed file: %w", err)
	}

	for i := range data.Invoices {
		switch data.Invoices[i].Status {
		case "":
			data.Invoices[i].Status = StatusUnpaid
		case StatusPaid, StatusUnpaid:
		default:
			return Data{}, fmt.Errorf("invoice %d: unknown status %q", i+1, data.Invoices[i].Status)
		}
	}

	return data, nil
}
