package service

import (
	"context"

	"giveaway/models"

	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock implementation of EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Load(ctx context.Context) ([]*models.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entry), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, entries []*models.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
