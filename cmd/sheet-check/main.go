// sheet-check probes the configured Google Sheets worksheet: it fetches
// the grid, normalizes it and prints a short summary. Useful to verify
// credentials and column headers before deploying the server or worker.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"extras/internal/analytics"
	"extras/internal/config"
	"extras/internal/core"
	gsheet "extras/internal/records/google"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.GoogleSpreadsheetID == "" {
		fmt.Fprintln(os.Stderr, "GOOGLE_SHEETS_SPREADSHEET_ID is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cli, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize Google Sheets client: %v\n", err)
		os.Exit(1)
	}

	grid, err := cli.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch worksheet: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("spreadsheet: %s\n", cfg.GoogleSpreadsheetID)
	fmt.Printf("worksheet:   %s\n", cfg.GoogleWorksheetName)
	fmt.Printf("headers:     %v\n", grid.Headers)
	fmt.Printf("data rows:   %d\n", len(grid.Rows))

	records := core.Normalize(grid)
	kpi := analytics.Snapshot(records)
	leakage := analytics.LeakageRatio(records)

	fmt.Printf("records:     %d\n", kpi.Count)
	fmt.Printf("collaborators: %d\n", kpi.Collaborators)
	fmt.Printf("total:       %s\n", core.FormatCurrency(kpi.Total))
	fmt.Printf("billable:    %s (%.1f%% recoverable)\n", core.FormatCurrency(leakage.Billable), leakage.RecoverablePct)
	fmt.Printf("non-billable: %s\n", core.FormatCurrency(leakage.NonBillable))
}
