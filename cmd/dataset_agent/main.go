// Package main provides the entry point for the HR dataset agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dataset_agent",
	Short: "Synthetic HR dataset generator and analysis agent",
	Long:  "dataset_agent turns a one-line company description into a relational HR dataset (jobs, org structure, employees, compensation) and answers natural-language questions about the result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
