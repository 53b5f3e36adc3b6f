package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/regional"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest-regional",
	Short: "Refresh regional salary profiles from external sources",
	Long: `Fetch the configured external salary sources, blend them into
cost-of-living profiles, and upsert the results into the database.`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	summary, err := regional.NewIngester(database).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Ingestion complete: %d inserted, %d updated, %d skipped\n",
		summary.Inserted, summary.Updated, summary.Skipped)
	return nil
}
