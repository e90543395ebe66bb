package bot

import (
	"context"
	"errors"
	"strings"

	"giveaway/repository"
	"giveaway/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleGiveawayInteractions routes the entry button and its modal
func (b *Bot) handleGiveawayInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == giveawayEnterButtonID {
			b.handleEnterButton(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == giveawayUIDModalID {
			b.handleUIDModalSubmit(s, i)
		}
	}
}

// handleEnterButton opens the UID form. Any user may activate the button,
// on any announcement, any number of times; dedupe happens on submit.
func (b *Bot) handleEnterButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: createUIDModal(),
	})
	if err != nil {
		log.Errorf("Failed to open UID modal: %v", err)
	}
}

// handleUIDModalSubmit runs the admission flow for one submission
func (b *Bot) handleUIDModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	user := interactionUser(i)
	if user == nil {
		log.Warn("UID modal submitted without a resolvable user")
		respondEphemeral(s, i, "❌ Something went wrong. Please try again later.")
		return
	}

	rawUID := modalInputValue(i.ModalSubmitData(), giveawayUIDInputID)

	entry, err := b.giveawayService.SubmitEntry(ctx, user.ID, user.String(), rawUID)
	switch {
	case errors.Is(err, service.ErrUIDAlreadyUsed):
		respondEphemeral(s, i, "❌ This UID has already been used to enter the giveaway.")

	case errors.Is(err, service.ErrUserAlreadyEntered):
		respondEphemeral(s, i, "❌ You have already entered the giveaway.")

	case errors.Is(err, repository.ErrStoreUnreadable), errors.Is(err, repository.ErrStoreUnwritable):
		log.WithFields(log.Fields{
			"user_id": user.ID,
			"error":   err.Error(),
		}).Error("Entry store failure during submission")
		respondEphemeral(s, i, "❌ Something went wrong. Please try again later.")

	case err != nil:
		log.WithFields(log.Fields{
			"user_id": user.ID,
			"error":   err.Error(),
		}).Error("Unexpected error during submission")
		respondEphemeral(s, i, "❌ Something went wrong. Please try again later.")

	default:
		log.WithFields(log.Fields{
			"user_id": entry.DiscordUserID,
			"uid":     entry.UID,
		}).Info("Accepted giveaway entry")
		respondEphemeral(s, i, "✅ You have successfully entered the giveaway!")
	}
}

// modalInputValue extracts a text input value from a modal submission
func modalInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, innerComp := range row.Components {
			input, ok := innerComp.(*discordgo.TextInput)
			if !ok {
				continue
			}
			if input.CustomID == customID {
				return strings.TrimSpace(input.Value)
			}
		}
	}
	return ""
}
