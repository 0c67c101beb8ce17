package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeroSapphire/greprep/internal/app"
	"github.com/aeroSapphire/greprep/internal/cluster"
	"github.com/aeroSapphire/greprep/internal/screen"
	drillscreen "github.com/aeroSapphire/greprep/internal/screens/drill"
)

var drillCmd = &cobra.Command{
	Use:   "drill [cluster-id]",
	Short: "Drill a confusion cluster",
	Long:  "Drill a group of commonly confused words. With no argument opens the cluster picker.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runApp(cmd, func(deps app.Deps) screen.Screen {
				return drillscreen.NewPicker(deps.EventRepo, deps.SnapRepo, deps.Provider)
			})
		}

		clusterID := args[0]
		if _, err := cluster.Get(clusterID); err != nil {
			return fmt.Errorf("unknown cluster %q: %w", clusterID, err)
		}
		return runApp(cmd, func(deps app.Deps) screen.Screen {
			return drillscreen.New(clusterID, deps.EventRepo, deps.SnapRepo, deps.Provider)
		})
	},
}
