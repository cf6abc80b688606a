package cmd

import (
	"fmt"
	"os"

	"github.com/ashwinkumar/biotutor/internal/app"
	"github.com/ashwinkumar/biotutor/internal/llm"
	"github.com/ashwinkumar/biotutor/internal/quiz"
	"github.com/ashwinkumar/biotutor/internal/registry"
	"github.com/ashwinkumar/biotutor/internal/store"
	"github.com/ashwinkumar/biotutor/internal/topics"
	"github.com/ashwinkumar/biotutor/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Registry: registry.New(eventRepo),
		Tracker:  topics.NewTracker(eventRepo),
		Events:   eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutoring and quizzes will be unavailable.")
	} else {
		opts.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
		opts.Generator = quiz.New(provider, quiz.DefaultConfig())
	}

	return app.Run(opts)
}
