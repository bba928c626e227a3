//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/maria/internal/storage"
)

// MockRecorder 对局记录 mock
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) SaveMatch(ctx context.Context, match *storage.MatchRecord) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockRecorder) RecordResult(ctx context.Context, outcome storage.GameOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

// MockMatchLoader 对局查询 mock
type MockMatchLoader struct {
	mock.Mock
}

func (m *MockMatchLoader) LoadMatch(ctx context.Context, id string) (*storage.MatchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.MatchRecord), args.Error(1)
}
