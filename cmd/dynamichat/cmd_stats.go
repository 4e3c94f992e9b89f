package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"dynamichat/internal/analytics"
	"dynamichat/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show analytics aggregates",
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

		printStats(store)
		return nil
	},
}

func printStats(store *analytics.Store) {
	total, err := store.TotalInteractions()
	if err != nil {
		fmt.Println("Analytics unavailable:", err)
		return
	}
	fmt.Printf("Total interactions : %d\n", total)
	if total == 0 {
		return
	}

	if avg, err := store.AvgResponseTime(); err == nil {
		fmt.Printf("Avg response time  : %.1fms\n", avg)
	}

	printCounts := func(title string, counts map[string]int, err error) {
		if err != nil || len(counts) == 0 {
			return
		}
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		// Highest count first, name breaks ties.
		sort.Slice(keys, func(i, j int) bool {
			if counts[keys[i]] != counts[keys[j]] {
				return counts[keys[i]] > counts[keys[j]]
			}
			return keys[i] < keys[j]
		})
		fmt.Printf("%s:\n", title)
		for _, k := range keys {
			fmt.Printf("  %-16s %d\n", k, counts[k])
		}
	}

	intents, err := store.IntentCounts()
	printCounts("Intents", intents, err)
	polarities, err := store.PolarityCounts()
	printCounts("Sentiment", polarities, err)
	emotions, err := store.EmotionCounts()
	printCounts("Emotions", emotions, err)
	entities, err := store.EntitySummary()
	printCounts("Entities", entities, err)
}
