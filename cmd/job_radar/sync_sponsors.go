package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-radar/internal/config"
	"github.com/jonathan/job-radar/internal/sponsors"
)

var syncSponsorsCmd = &cobra.Command{
	Use:   "sync-sponsors",
	Short: "Refresh the IND sponsor registry",
	Long:  `Download the public IND register of recognised sponsors and replace the local registry table.`,
	RunE:  runSyncSponsors,
}

func init() {
	rootCmd.AddCommand(syncSponsorsCmd)
}

func runSyncSponsors(_ *cobra.Command, _ []string) error {
	// Sponsor sync does not touch the model, so skip the Gemini key check.
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for sponsor sync")
	}

	ctx := context.Background()
	store, err := sponsors.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := sponsors.FetchRegister(ctx, nil)
	if err != nil {
		return err
	}

	inserted, err := store.ReplaceAll(ctx, records)
	if err != nil {
		return err
	}

	fmt.Printf("Synced %d sponsors\n", inserted)
	return nil
}
