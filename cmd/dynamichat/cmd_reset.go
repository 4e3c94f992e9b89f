package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dynamichat/internal/analytics"
	"dynamichat/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded analytics",
	Long: `Removes every interaction record from the analytics database. The
database file itself is kept so future sessions keep logging to it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err := analytics.NewStore(cfg.Analytics.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open analytics store: %w", err)
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear analytics: %w", err)
		}
		fmt.Println("Analytics cleared.")
		return nil
	},
}
