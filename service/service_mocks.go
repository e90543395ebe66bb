package service

import (
	"context"

	"giveaway/models"

	"github.com/stretchr/testify/mock"
)

// MockGiveawayService is a mock implementation of GiveawayService
type MockGiveawayService struct {
	mock.Mock
}

func (m *MockGiveawayService) SubmitEntry(ctx context.Context, discordUserID, discordTag, rawUID string) (*models.Entry, error) {
	args := m.Called(ctx, discordUserID, discordTag, rawUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockGiveawayService) ListEntries(ctx context.Context) ([]*models.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entry), args.Error(1)
}

func (m *MockGiveawayService) ExportCSV(ctx context.Context) ([]byte, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Int(1), args.Error(2)
}
