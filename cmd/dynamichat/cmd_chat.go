package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"dynamichat/internal/analytics"
	"dynamichat/internal/config"
	"dynamichat/internal/logging"
	"dynamichat/internal/orchestrator"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Starts a line-based chat session. Each reply is followed by a one-line
diagnostic showing the detected intent, sentiment, response source, and
latency.

Commands inside the session:
  /clear   wipe the conversation and start fresh
  /stats   show analytics for the current database
  /quit    leave the session
  +        mark the previous answer helpful
  -        mark the previous answer unhelpful`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := analytics.NewStore(cfg.Analytics.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open analytics store: %w", err)
	}
	defer store.Close()

	orch := orchestrator.New(cfg, orchestrator.WithAnalytics(store))

	// Pick up config edits while the session is running.
	watcher, err := config.NewWatcher(configPath, nil)
	if err != nil {
		logging.BootError("Config watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%s %s - type /quit to leave, /clear to reset, /stats for analytics\n\n",
		cfg.Name, cfg.Version)

	scanner := bufio.NewScanner(os.Stdin)
	var lastUserText string

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/quit", "/exit":
			fmt.Println("Goodbye!")
			return nil
		case "/clear":
			orch.ClearConversation()
			lastUserText = ""
			fmt.Println("Conversation cleared.")
			continue
		case "/stats":
			printStats(store)
			continue
		case "+", "-":
			if lastUserText == "" {
				fmt.Println("Nothing to rate yet.")
				continue
			}
			orch.Feedback(lastUserText, line == "+")
			fmt.Println("Thanks for the feedback!")
			continue
		case "":
			continue
		}

		env, err := orch.ProcessMessage(ctx, line)
		if err != nil {
			return fmt.Errorf("cannot reach the backend: %w", err)
		}
		lastUserText = line

		fmt.Printf("\nbot> %s\n", env.Text)
		fmt.Printf("     [%s %.2f | %s %s | %s | %.1fms]\n\n",
			env.Intent, env.IntentConf,
			env.Sentiment.Polarity, env.Sentiment.Emoji,
			env.Source, env.ResponseTimeMs)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
