// Package main provides the entry point for the HTML autograder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "autograder",
	Short:         "Grade a single HTML submission against a fixed rubric",
	Long:          "autograder scores one HTML page on structure, hygiene, content and syntax, writes a markdown report for CI and exits non-zero below the passing threshold.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
