package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"giveaway/models"
)

// Sentinel errors for the two ways the backing file can fail. Callers
// match with errors.Is; the wrapped error carries the details.
var (
	ErrStoreUnreadable = errors.New("entry store unreadable")
	ErrStoreUnwritable = errors.New("entry store unwritable")
)

// EntryRepository persists the full entry list as a single JSON array on
// disk. There is no partial update: every mutation is a whole-file rewrite.
type EntryRepository struct {
	path string
}

// NewEntryRepository creates a repository backed by the file at path
func NewEntryRepository(path string) *EntryRepository {
	return &EntryRepository{path: path}
}

// Load reads all entries in store order. A missing file is bootstrapped to
// an empty store; a file that exists but cannot be parsed into valid
// entries fails with ErrStoreUnreadable.
func (r *EntryRepository) Load(ctx context.Context) ([]*models.Entry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := r.Save(ctx, []*models.Entry{}); err != nil {
			return nil, err
		}
		return []*models.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreUnreadable, r.path, err)
	}

	var entries []*models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStoreUnreadable, r.path, err)
	}

	for i, entry := range entries {
		if entry == nil {
			return nil, fmt.Errorf("%w: %s: entry %d is null", ErrStoreUnreadable, r.path, i)
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: entry %d: %v", ErrStoreUnreadable, r.path, i, err)
		}
	}

	if entries == nil {
		entries = []*models.Entry{}
	}
	return entries, nil
}

// Save rewrites the backing file with the given entries, preserving order
func (r *EntryRepository) Save(ctx context.Context, entries []*models.Entry) error {
	if entries == nil {
		entries = []*models.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding entries: %v", ErrStoreUnwritable, err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStoreUnwritable, r.path, err)
	}
	return nil
}
