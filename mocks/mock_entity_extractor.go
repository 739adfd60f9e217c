package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/port"
)

// MockEntityExtractor is a mock implementation of port.EntityExtractor.
type MockEntityExtractor struct {
	mock.Mock
}

func (m *MockEntityExtractor) Extract(ctx context.Context, input port.ExtractInput) ([]domain.EntityRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntityRecord), args.Error(1)
}
