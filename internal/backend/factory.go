// Package backend selects and assembles the record source the dashboard
// reads from: the live worksheet, the local SQLite mirror, or sample data
// in memory.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	gsheet "extras/internal/records/google"
	"extras/internal/records/memory"
	"extras/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateSource implements Factory.CreateSource.
func (f *DefaultFactory) CreateSource(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SheetsBackend:
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend")
		return &Result{Source: cli}, nil

	case SQLiteBackend:
		repo, err := storage.NewRepository(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite mirror: %w", err)
		}
		f.logger.Info("Initialized SQLite mirror backend", "db_path", config.SQLiteDBPath)
		return &Result{Source: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		dataDir := config.DataDirectory
		if dataDir == "" {
			dataDir = "data"
		}
		store := memory.NewFromFiles(dataDir)
		f.logger.Info("Initialized memory backend", "data_directory", dataDir)
		return &Result{Source: store}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
