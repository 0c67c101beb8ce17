package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aeroSapphire/greprep/internal/app"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/screens/study"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Review flashcards due today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(deps app.Deps) screen.Screen {
			return study.New(deps.EventRepo, deps.SnapRepo, deps.Provider)
		})
	},
}
