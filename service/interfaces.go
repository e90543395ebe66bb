package service

import (
	"context"

	"giveaway/models"
)

// EntryRepository defines the interface for entry persistence
type EntryRepository interface {
	// Load returns all stored entries in submission order, creating the
	// empty store if it does not exist yet
	Load(ctx context.Context) ([]*models.Entry, error)

	// Save rewrites the store with the given entries, preserving order
	Save(ctx context.Context, entries []*models.Entry) error
}

// GiveawayService defines the interface for giveaway operations
type GiveawayService interface {
	// SubmitEntry validates and persists one giveaway submission.
	// Returns ErrUIDAlreadyUsed or ErrUserAlreadyEntered on the two
	// dedupe rejections; the store is left untouched in both cases.
	SubmitEntry(ctx context.Context, discordUserID, discordTag, rawUID string) (*models.Entry, error)

	// ListEntries returns all stored entries in submission order
	ListEntries(ctx context.Context) ([]*models.Entry, error)

	// ExportCSV renders all entries as CSV. Returns the file contents and
	// the entry count; an empty store yields (nil, 0, nil).
	ExportCSV(ctx context.Context) ([]byte, int, error)
}
