package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeroSapphire/greprep/internal/app"
	"github.com/aeroSapphire/greprep/internal/screen"
	practicescreen "github.com/aeroSapphire/greprep/internal/screens/practice"
	"github.com/aeroSapphire/greprep/internal/skills"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [skill-id]",
	Short: "Start an adaptive practice session",
	Long:  "Start an adaptive practice session. With no argument opens the skill picker; with a skill ID jumps straight into that skill.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runApp(cmd, func(deps app.Deps) screen.Screen {
				return practicescreen.NewPicker(deps.Source, deps.EventRepo, deps.SnapRepo, deps.Provider)
			})
		}

		skillID := args[0]
		if !skills.Exists(skillID) {
			return fmt.Errorf("unknown skill %q; run 'greprep stats' to list skills", skillID)
		}
		return runApp(cmd, func(deps app.Deps) screen.Screen {
			return practicescreen.New(skillID, deps.Source, deps.EventRepo, deps.SnapRepo, deps.Provider)
		})
	},
}
