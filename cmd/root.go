package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aeroSapphire/greprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "greprep",
	Short: "Adaptive GRE vocabulary trainer",
	Long:  "GREprep — terminal trainer for GRE verbal: adaptive practice, spaced-repetition flashcards, and confusion-cluster drills.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	// Missing .env is fine; env vars and flags still apply.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GREPREP_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GREPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
