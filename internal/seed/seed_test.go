package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	data := Default()

	require.Len(t, data.Ledger, 3)
	assert.Equal(t, "Initial Balance", data.Ledger[0].Description)
	assert.Equal(t, "10000", data.Ledger[0].Credit.Value().String())
	assert.Equal(t, "5000", data.Ledger[1].Debit.Value().String())
	assert.Equal(t, "7000", data.Ledger[2].Credit.Value().String())

	require.Len(t, data.Invoices, 3)
	assert.Equal(t, []string{StatusPaid, StatusUnpaid, StatusPaid}, []string{
		data.Invoices[0].Status, data.Invoices[1].Status, data.Invoices[2].Status,
	})
}

func TestParse(t *testing.T) {
	raw := []byte(`
ledger:
  - date: 2024-01-01
    description: Opening
    credit: 2500
  - date: 2024-01-02
    description: Rent
    debit: "1200.50"
invoices:
  - date: 2024-01-03
    customer: Acme
    amount: 99.90
    status: Paid
  - date: 2024-01-04
    customer: Globex
    amount: 10
`)

	data, err := Parse(raw)
	require.NoError(t, err)

	require.Len(t, data.Ledger, 2)
	assert.Equal(t, "2024-01-01", data.Ledger[0].Date)
	assert.Equal(t, "2500", data.Ledger[0].Credit.Value().String())
	assert.Equal(t, "0", data.Ledger[0].Debit.Value().String())
	assert.Equal(t, "1200.5", data.Ledger[1].Debit.Value().String())

	require.Len(t, data.Invoices, 2)
	assert.Equal(t, "99.9", data.Invoices[0].Amount.Value().String())
	assert.Equal(t, StatusPaid, data.Invoices[0].Status)
	assert.Equal(t, StatusUnpaid, data.Invoices[1].Status)
}

func TestParse_NonNumericAmountIsNaN(t *testing.T) {
	data, err := Parse([]byte("ledger:\n  - description: Broken\n    debit: lots\n"))
	require.NoError(t, err)

	assert.True(t, data.Ledger[0].Debit.Value().IsNaN())
}

func TestParse_UnknownStatus(t *testing.T) {
	_, err := Parse([]byte("invoices:\n  - customer: Acme\n    status: Overdue\n"))
	assert.ErrorContains(t, err, "unknown status")
}

func TestParse_AmountMustBeScalar(t *testing.T) {
	_, err := Parse([]byte("invoices:\n  - customer: Acme\n    amount: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	data, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), data)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invoices:\n  - customer: Solo\n    amount: 1\n"), 0o600))

	data, err = Load(path)
	require.NoError(t, err)
	assert.Empty(t, data.Ledger)
	require.Len(t, data.Invoices, 1)
	assert.Equal(t, "Solo", data.Invoices[0].Customer)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
