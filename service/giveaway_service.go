package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"giveaway/models"
)

// Validation rejections. These are expected outcomes, not system errors.
var (
	ErrUIDAlreadyUsed     = errors.New("uid already used")
	ErrUserAlreadyEntered = errors.New("user already entered")
)

// giveawayService implements the GiveawayService interface
type giveawayService struct {
	entryRepo EntryRepository
	now       func() time.Time

	// mu serializes the load-check-append-save cycle so two overlapping
	// submissions cannot both pass the dedupe checks or clobber each
	// other's write.
	mu sync.Mutex
}

// NewGiveawayService creates a new giveaway service
func NewGiveawayService(entryRepo EntryRepository) GiveawayService {
	return &giveawayService{
		entryRepo: entryRepo,
		now:       time.Now,
	}
}

// SubmitEntry validates and persists one giveaway submission
func (s *giveawayService) SubmitEntry(ctx context.Context, discordUserID, discordTag, rawUID string) (*models.Entry, error) {
	uid := strings.TrimSpace(rawUID)

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.entryRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	// UID check comes first: when both conditions apply the UID rejection
	// is the one the user sees
	for _, e := range entries {
		if e.UID == uid {
			return nil, ErrUIDAlreadyUsed
		}
	}
	for _, e := range entries {
		if e.DiscordUserID == discordUserID {
			return nil, ErrUserAlreadyEntered
		}
	}

	entry := models.NewEntry(discordUserID, discordTag, uid, s.now())
	entries = append(entries, entry)

	if err := s.entryRepo.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to save entries: %w", err)
	}

	return entry, nil
}

// ListEntries returns all stored entries in submission order
func (s *giveawayService) ListEntries(ctx context.Context) ([]*models.Entry, error) {
	entries, err := s.entryRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// ExportCSV renders all entries as CSV in store order
func (s *giveawayService) ExportCSV(ctx context.Context) ([]byte, int, error) {
	entries, err := s.entryRepo.Load(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, 0, nil
	}
	return BuildEntriesCSV(entries), len(entries), nil
}
