package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the ISO-8601 format entries are stamped with.
// UTC with microsecond precision and no offset suffix, matching the
// format the store has always contained. The .999999 verb trims
// trailing zeros, so the fractional part varies in length; consumers
// must treat the timestamp as an opaque ISO-8601 string.
const TimestampLayout = "2006-01-02T15:04:05.999999"

// Entry represents one accepted giveaway submission
type Entry struct {
	DiscordUserID string `json:"discord_user_id"`
	DiscordTag    string `json:"discord_tag"`
	UID           string `json:"uid"`
	Timestamp     string `json:"timestamp"`
}

// NewEntry creates an entry for the given user and UID, stamped at now (UTC)
func NewEntry(discordUserID, discordTag, uid string, now time.Time) *Entry {
	return &Entry{
		DiscordUserID: discordUserID,
		DiscordTag:    discordTag,
		UID:           uid,
		Timestamp:     now.UTC().Format(TimestampLayout),
	}
}

// Validate checks that a loaded entry has the required shape.
// An empty UID is a legal value; the identifying fields are not.
func (e *Entry) Validate() error {
	if e.DiscordUserID == "" {
		return fmt.Errorf("entry missing discord_user_id")
	}
	if e.Timestamp == "" {
		return fmt.Errorf("entry missing timestamp")
	}
	return nil
}
