package bot

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"giveaway/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID int64
}

type Bot struct {
	config          Config
	session         *discordgo.Session
	giveawayService service.GiveawayService
}

// New creates a bot, registers all handlers and opens the gateway
// connection. Handlers are registered before Open so the entry button on
// any announcement posted by a previous process is live again as soon as
// the session is ready.
func New(config Config, giveawayService service.GiveawayService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	// Message content intent is required for prefix commands
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		config:          config,
		session:         dg,
		giveawayService: giveawayService,
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(bot.handleGiveawayInteractions)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleReady logs the identity the gateway handed us
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("Logged in as %s (ID: %s)", r.User.Username, r.User.ID)
	log.Info("Bot is ready")
}
