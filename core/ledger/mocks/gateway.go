package mocks

import (
	"context"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"

	"github.com/stretchr/testify/mock"
)

// Gateway is a mock implementation of ledger.Gateway
type Gateway struct {
	mock.Mock
}

func (m *Gateway) GetOwnedObjects(ctx context.Context, owner, structType string) ([]ledger.RawObject, error) {
	args := m.Called(ctx, owner, structType)
	if objs, ok := args.Get(0).([]ledger.RawObject); ok {
		return objs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Gateway) QueryEvents(ctx context.Context, eventType string, limit int, descending bool) ([]ledger.RawEvent, error) {
	args := m.Called(ctx, eventType, limit, descending)
	if events, ok := args.Get(0).([]ledger.RawEvent); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Gateway) GetObject(ctx context.Context, id string) (*ledger.RawObject, error) {
	args := m.Called(ctx, id)
	if obj, ok := args.Get(0).(*ledger.RawObject); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Gateway) ExecuteTransaction(ctx context.Context, intent *ledger.TransactionIntent) (*ledger.ExecutionResult, error) {
	args := m.Called(ctx, intent)
	if res, ok := args.Get(0).(*ledger.ExecutionResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Signer is a mock implementation of ledger.Signer
type Signer struct {
	mock.Mock
}

func (m *Signer) SignAndExecute(ctx context.Context, intent *ledger.TransactionIntent) (*ledger.ExecutionResult, error) {
	args := m.Called(ctx, intent)
	if res, ok := args.Get(0).(*ledger.ExecutionResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
