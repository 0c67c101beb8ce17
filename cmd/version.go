package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser via -ldflags; "(devel)" means a
// local build that the updater refuses to touch.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("greprep", version)
	},
}
