package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"giveaway/cmd"
	"giveaway/repository"
	"giveaway/service"
)

func main() {
	// Check for the offline export subcommand
	if len(os.Args) > 1 && os.Args[1] == "export" {
		if err := handleExportCommand(); err != nil {
			log.Fatal("Export error:", err)
		}
		return
	}

	// Normal bot operation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error:", err)
	}
}

// handleExportCommand writes entries.csv from the store without connecting
// to Discord. Usage: giveaway export [store-path]
func handleExportCommand() error {
	path := "entries.json"
	if len(os.Args) > 2 {
		path = os.Args[2]
	}

	svc := service.NewGiveawayService(repository.NewEntryRepository(path))

	data, count, err := svc.ExportCSV(context.Background())
	if err != nil {
		return err
	}
	if count == 0 {
		log.Println("No entries found.")
		return nil
	}

	if err := os.WriteFile("entries.csv", data, 0o644); err != nil {
		return fmt.Errorf("writing entries.csv: %w", err)
	}
	log.Printf("Exported %d entries to entries.csv", count)
	return nil
}
