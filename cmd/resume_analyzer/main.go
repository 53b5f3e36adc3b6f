// Package main provides the entry point for the Resume Analyzer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume Analyzer HTTP API Server",
	Long:  "Resume Analyzer scores resumes against a job requirement catalog and produces job, course, and certification recommendations with regional salary adjustment.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
