// Package worker runs the periodic worksheet sync: fetch the live sheet,
// replace the local mirror, and notify listeners to drop their caches.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"extras/internal/core"
	"extras/internal/records"
)

// Mirror is the destination of a sync, satisfied by storage.Repository.
type Mirror interface {
	ReplaceAll(ctx context.Context, items []core.Record) error
}

// Publisher announces a completed sync, satisfied by amqp.Client. It is
// optional; without one the worker only mirrors.
type Publisher interface {
	PublishRefresh(ctx context.Context, reason string, rows int) error
}

// RefreshWorker copies the live worksheet into the SQLite mirror on a
// fixed interval.
type RefreshWorker struct {
	source    records.Source
	mirror    Mirror
	publisher Publisher
	logger    *slog.Logger
}

// NewRefreshWorker creates a sync worker. publisher may be nil.
func NewRefreshWorker(source records.Source, mirror Mirror, publisher Publisher, logger *slog.Logger) *RefreshWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &RefreshWorker{
		source:    source,
		mirror:    mirror,
		publisher: publisher,
		logger:    logger,
	}
}

// RunOnce performs a single sync cycle.
func (w *RefreshWorker) RunOnce(ctx context.Context) error {
	start := time.Now()

	data, err := w.source.Records(ctx)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}

	if err := w.mirror.ReplaceAll(ctx, data); err != nil {
		return fmt.Errorf("replace mirror: %w", err)
	}

	w.logger.InfoContext(ctx, "Worksheet synced to mirror",
		"rows", len(data),
		"duration", time.Since(start))

	if w.publisher != nil {
		if err := w.publisher.PublishRefresh(ctx, "mirror_sync", len(data)); err != nil {
			// The mirror is already updated; a lost notification only
			// delays cache expiry.
			w.logger.WarnContext(ctx, "Failed to publish refresh notification", "error", err)
		}
	}

	return nil
}

// Run syncs immediately and then on every tick until ctx is done.
func (w *RefreshWorker) Run(ctx context.Context, interval time.Duration) error {
	if err := w.RunOnce(ctx); err != nil {
		w.logger.ErrorContext(ctx, "Initial sync failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "Sync worker stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				w.logger.ErrorContext(ctx, "Sync cycle failed", "error", err)
			}
		}
	}
}
