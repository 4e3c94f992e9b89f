package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dynamichat/internal/config"
	"dynamichat/internal/logging"
)

var (
	// Global flags
	configPath string
	workspace  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dynamichat",
	Short: "DynamiChat - context-aware conversational assistant",
	Long: `DynamiChat is a sentiment-aware chatbot that understands each message
offline (intent, entities, emotion) before asking Gemini to answer it.

The offline pipeline always runs; when the backend is unreachable the
gateway degrades to canned responses, so the chat never goes silent.

Run without arguments to start the interactive chat.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(workspace); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application name and version",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultConfig()
		}
		fmt.Printf("%s %s\n", cfg.Name, cfg.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the config file")
	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", ".", "workspace directory")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
