package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Fixed custom IDs. The button ID is stateless on purpose: announcements
// posted by an earlier process keep working because the running process
// always handles this ID.
const (
	giveawayEnterButtonID = "giveaway_enter_button"
	giveawayUIDModalID    = "giveaway_uid_modal"
	giveawayUIDInputID    = "uid"
)

// uidMaxLength is the input cap on the exchange UID field
const uidMaxLength = 100

// colorSuccess is the announcement accent (green)
const colorSuccess = 0x57F287

// createGiveawayEmbed builds the fixed giveaway announcement embed
func createGiveawayEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "💸 $300 Giveaway – 3 Winners!",
		Description: "We're giving away **$300** to **3 lucky winners** ($100 each).\n\n" +
			"**How to enter:**\n" +
			"1. Create an account with **BingX**.\n" +
			"2. Trade at least **$1** before the draw.\n" +
			"3. Click the button below and submit your **BingX UID**.\n\n" +
			"You may only enter **once per UID and Discord account**.",
		Color: colorSuccess,
	}
}

// createGiveawayComponents builds the entry button row for the announcement
func createGiveawayComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Enter giveaway",
					Style:    discordgo.SuccessButton,
					CustomID: giveawayEnterButtonID,
				},
			},
		},
	}
}

// createUIDModal builds the one-field form requesting the exchange UID
func createUIDModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: giveawayUIDModalID,
		Title:    "Enter Giveaway",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    giveawayUIDInputID,
						Label:       "Your Exchange UID",
						Style:       discordgo.TextInputShort,
						Placeholder: "Paste your UID here",
						Required:    true,
						MaxLength:   uidMaxLength,
					},
				},
			},
		},
	}
}
