package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aeroSapphire/greprep/internal/app"
	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/question"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/store"
)

// screenFactory builds the first screen from the wired dependencies.
// A nil factory starts at the home menu.
type screenFactory func(deps app.Deps) screen.Screen

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, makeScreen screenFactory) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := app.Deps{
		Source:    question.DefaultBank(time.Now().UnixNano()),
		EventRepo: st.EventRepo(),
		SnapRepo:  st.SnapshotRepo(),
	}

	// The app works without a provider: sentence evaluation, mnemonics,
	// and LLM mistake classification degrade gracefully.
	cfg, found := llm.DiscoverConfig()
	if !found {
		fmt.Fprintln(os.Stderr, "No LLM provider configured; AI feedback is off.")
	} else {
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		} else {
			deps.Provider = provider
		}
	}

	// Header numbers come from the snapshot once, at launch.
	if prof, err := profile.Load(ctx, deps.SnapRepo, nil); err == nil {
		now := time.Now()
		deps.DueCards = len(prof.Reviews.Due(now))
		deps.Streak = prof.Streak(now)
	}

	if makeScreen == nil {
		return app.Run(deps)
	}
	return app.RunScreen(deps, makeScreen(deps))
}
