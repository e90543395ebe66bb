package bot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const commandPrefix = "!"

// handleMessageCreate dispatches the prefix commands exposed to operators
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Skip messages from our own bot to avoid loops
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	// Prefix commands only exist inside a guild
	if m.GuildID == "" {
		return
	}

	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}
	command := strings.Fields(strings.TrimPrefix(m.Content, commandPrefix))
	if len(command) == 0 {
		return
	}

	switch command[0] {
	case "start_giveaway":
		if !b.requireAdministrator(s, m) {
			return
		}
		b.handleStartGiveaway(s, m)

	case "export_entries":
		if !b.requireAdministrator(s, m) {
			return
		}
		b.handleExportEntries(s, m)
	}
}

// requireAdministrator checks the administrator bit of the invoking
// member's resolved permissions and replies with a rejection when absent
func (b *Bot) requireAdministrator(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	perms, err := s.State.MessagePermissions(m.Message)
	if err != nil {
		perms, err = s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	}
	if err != nil {
		log.Errorf("Failed to resolve permissions for user %s: %v", m.Author.ID, err)
		b.replyTo(s, m, "❌ Something went wrong. Please try again later.")
		return false
	}

	if perms&discordgo.PermissionAdministrator == 0 {
		b.replyTo(s, m, "🔒 You need administrator permissions to use this command.")
		return false
	}
	return true
}

// handleStartGiveaway posts the giveaway announcement with its entry button.
// Every invocation posts another live button; they all share the same store.
func (b *Bot) handleStartGiveaway(s *discordgo.Session, m *discordgo.MessageCreate) {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{createGiveawayEmbed()},
		Components: createGiveawayComponents(),
	})
	if err != nil {
		log.Errorf("Failed to post giveaway announcement: %v", err)
		b.replyTo(s, m, "❌ Something went wrong. Please try again later.")
		return
	}

	log.WithFields(log.Fields{
		"channel_id": m.ChannelID,
		"invoked_by": m.Author.ID,
	}).Info("Posted giveaway announcement")
}

// handleExportEntries replies with all stored entries as a CSV attachment
func (b *Bot) handleExportEntries(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx := context.Background()

	data, count, err := b.giveawayService.ExportCSV(ctx)
	if err != nil {
		log.Errorf("Failed to export entries: %v", err)
		b.replyTo(s, m, "❌ Something went wrong. Please try again later.")
		return
	}

	if count == 0 {
		b.replyTo(s, m, "⚠ No entries found.")
		return
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("📁 Exported **%d** entries.", count),
		Files: []*discordgo.File{
			{
				Name:        "entries.csv",
				ContentType: "text/csv",
				Reader:      bytes.NewReader(data),
			},
		},
		Reference: m.Reference(),
	})
	if err != nil {
		log.Errorf("Failed to send entries export: %v", err)
		b.replyTo(s, m, "❌ Something went wrong. Please try again later.")
		return
	}

	log.WithFields(log.Fields{
		"entry_count": count,
		"invoked_by":  m.Author.ID,
	}).Info("Exported giveaway entries")
}
