// Package google reads the extras worksheet through the Google Sheets v4
// API with read-only service-account credentials.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"extras/internal/core"
	"extras/internal/records"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// defaultWorksheet is the sheet tab read when none is configured.
const defaultWorksheet = "Página1"

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	worksheet     string
}

var _ records.Source = (*Client)(nil)

// NewFromEnv creates a read-only Sheets client from environment variables.
// Required: GOOGLE_SHEETS_SPREADSHEET_ID.
// Credentials: GOOGLE_CREDENTIALS_JSON (inline JSON),
// GOOGLE_SERVICE_ACCOUNT_JSON (file path) or GOOGLE_APPLICATION_CREDENTIALS
// (file path), checked in that order.
// Optional: GOOGLE_SHEETS_WORKSHEET_NAME (default "Página1").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SHEETS_SPREADSHEET_ID")
	}

	worksheet := strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_WORKSHEET_NAME"))
	if worksheet == "" {
		worksheet = defaultWorksheet
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// newSheetsService initializes the Sheets service with read-only scope.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inlineJSON := strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_JSON"))
	credentialsFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	if inlineJSON == "" && credentialsFile == "" {
		credentialsFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case inlineJSON != "":
		slog.InfoContext(ctx, "Using inline service account credentials")
		credentialsJSON = []byte(inlineJSON)
	case credentialsFile != "":
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		slog.InfoContext(ctx, "Using service account credentials file", "path", credentialsFile)
		credentialsJSON = data
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_CREDENTIALS_JSON, GOOGLE_SERVICE_ACCOUNT_JSON, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// Fetch retrieves the whole worksheet as a raw grid. The first row is the
// header row; an empty sheet yields an empty grid, not an error.
func (c *Client) Fetch(ctx context.Context) (core.Grid, error) {
	if c.svc == nil {
		return core.Grid{}, errors.New("sheets service not initialized")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.worksheet).Context(ctx).Do()
	if err != nil {
		return core.Grid{}, fmt.Errorf("read %s: %w", c.worksheet, err)
	}
	if len(resp.Values) == 0 {
		return core.Grid{}, nil
	}
	grid := core.Grid{
		Headers: toStrings(resp.Values[0]),
		Rows:    make([][]string, 0, len(resp.Values)-1),
	}
	for _, row := range resp.Values[1:] {
		grid.Rows = append(grid.Rows, toStrings(row))
	}
	return grid, nil
}

// Records implements records.Source: fetch plus normalization.
func (c *Client) Records(ctx context.Context) ([]core.Record, error) {
	grid, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	out := core.Normalize(grid)
	slog.DebugContext(ctx, "Fetched worksheet",
		"worksheet", c.worksheet,
		"rows", len(out))
	return out, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
