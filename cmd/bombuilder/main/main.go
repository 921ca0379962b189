package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bombuilder/cmd/bombuilder"
	"github.com/arthur-debert/bombuilder/pkg/ui"
)

func main() {
	rootCmd := bombuilder.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		if details := ui.ErrorDetails(err); details != "" {
			fmt.Fprintln(os.Stderr, details)
		}
		os.Exit(1)
	}
}
