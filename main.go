package main

import (
	"os"

	"github.com/aeroSapphire/greprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
