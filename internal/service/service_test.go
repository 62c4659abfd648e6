package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/tally-server/internal/operator"
	"github.com/carson-networks/tally-server/internal/operator/actions"
	"github.com/carson-networks/tally-server/internal/seed"
	"github.com/carson-networks/tally-server/internal/storage"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newTestService wires a real storage and a single-worker operator.
func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return NewService(store, delegator)
}

func newSeededService(t *testing.T) *Service {
	t.Helper()
	svc := newTestService(t)
	require.NoError(t, svc.Seed(context.Background(), seed.Default()))
	return svc
}
