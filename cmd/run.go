package cmd

import (
	"context"
	"fmt"
	"log"

	"giveaway/bot"
	"giveaway/config"
	"giveaway/repository"
	"giveaway/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting giveaway bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize entry store
	entryRepo := repository.NewEntryRepository(cfg.EntriesFile)
	log.Printf("Using entry store at %s", cfg.EntriesFile)

	// Initialize services
	giveawayService := service.NewGiveawayService(entryRepo)

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.GuildID,
	}
	discordBot, err := bot.New(botConfig, giveawayService)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}
	log.Println("Shutdown completed")

	return nil
}
