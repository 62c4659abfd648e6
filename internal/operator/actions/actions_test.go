package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/tally-server/internal/amount"
	"github.com/carson-networks/tally-server/internal/seed"
	"github.com/carson-networks/tally-server/internal/storage"
	"github.com/carson-networks/tally-server/internal/storage/invoice"
)

func perform(t *testing.T, s *storage.Storage, action IAction) {
	t.Helper()
	ctx := context.Background()

	writer, err := s.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, action.Perform(ctx, writer))
	require.NoError(t, writer.Commit())
}

func TestAppendLedgerEntry_EmptyLedger(t *testing.T) {
	s := storage.NewStorage()

	action := &AppendLedgerEntry{
		Date:        "2023-10-01",
		Description: "Opening",
		Debit:       amount.FromInt(250),
		Credit:      amount.FromInt(1000),
	}
	perform(t, s, action)

	require.NotNil(t, action.Created)
	assert.Equal(t, "1", action.Created.ID)
	assert.Equal(t, "750", action.Created.Balance.String())
}

func TestAppendLedgerEntry_AccruesFromLastRow(t *testing.T) {
	s := storage.NewStorage()
	perform(t, s, &AppendLedgerEntry{Credit: amount.FromInt(100)})

	action := &AppendLedgerEntry{Debit: amount.FromInt(30), Credit: amount.FromInt(5)}
	perform(t, s, action)

	assert.Equal(t, "2", action.Created.ID)
	assert.Equal(t, "75", action.Created.Balance.String())
}

func TestAppendLedgerEntry_NaNPoisonsLaterBalances(t *testing.T) {
	s := storage.NewStorage()
	perform(t, s, &AppendLedgerEntry{Debit: amount.Parse("oops")})

	next := &AppendLedgerEntry{Credit: amount.FromInt(10)}
	perform(t, s, next)

	assert.True(t, next.Created.Balance.IsNaN())
}

func TestAppendInvoice_AlwaysUnpaid(t *testing.T) {
	s := storage.NewStorage()

	action := &AppendInvoice{Date: "2023-10-10", Customer: "Acme", Amount: amount.FromInt(1200)}
	perform(t, s, action)

	require.NotNil(t, action.Created)
	assert.Equal(t, "1", action.Created.ID)
	assert.Equal(t, invoice.StatusUnpaid, action.Created.Status)
}

func TestSeed_Default(t *testing.T) {
	s := storage.NewStorage()
	perform(t, s, &Seed{Data: seed.Default()})

	ctx := context.Background()
	reader, err := s.Read(ctx)
	require.NoError(t, err)

	entries, err := reader.Ledger.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var ids, balances []string
	for _, e := range entries {
		ids = append(ids, e.ID)
		balances = append(balances, e.Balance.String())
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, []string{"10000", "5000", "12000"}, balances)

	invoices, err := reader.Invoices.All(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, invoice.StatusPaid, invoices[0].Status)
	assert.Equal(t, invoice.StatusUnpaid, invoices[1].Status)
	assert.Equal(t, invoice.StatusPaid, invoices[2].Status)
}
