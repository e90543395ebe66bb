package service

import (
	"strings"

	"giveaway/models"
)

// CSVHeader is the fixed header row of the entries export
const CSVHeader = "discordUserId,discordTag,uid,timestamp"

// BuildEntriesCSV renders entries as CSV in store order. Every field is
// double-quoted and embedded quotes are doubled; encoding/csv only quotes
// fields that need it, so the rows are written by hand.
func BuildEntriesCSV(entries []*models.Entry) []byte {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteString("\n")

	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		fields := []string{e.DiscordUserID, e.DiscordTag, e.UID, e.Timestamp}
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		rows = append(rows, strings.Join(quoted, ","))
	}
	b.WriteString(strings.Join(rows, "\n"))

	return []byte(b.String())
}
