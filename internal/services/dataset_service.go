// Package services sits between the HTTP handlers and the record source:
// it caches the normalized dataset, deduplicates concurrent fetches, and
// absorbs source failures so the dashboard always renders.
package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"extras/internal/cache"
	"extras/internal/core"
	"extras/internal/records"
)

const datasetCacheKey = "dataset"

// DefaultCacheTTL is how long a fetched dataset stays warm before the next
// request goes back to the source.
const DefaultCacheTTL = 5 * time.Minute

// DatasetService serves the current dataset from cache, fetching from the
// underlying source on miss. A source failure is logged and reported as an
// empty dataset, never as an error: the dashboard degrades to zeros.
type DatasetService struct {
	source records.Source
	cache  *cache.LRUCache[[]core.Record]
	group  singleflight.Group
	logger *slog.Logger
}

// NewDatasetService creates a dataset service over the given source.
func NewDatasetService(source records.Source, ttl time.Duration, logger *slog.Logger) *DatasetService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetService{
		source: source,
		cache:  cache.NewLRUCache[[]core.Record](1, ttl),
		logger: logger,
	}
}

// Records returns the current dataset. Concurrent callers on a cold cache
// share one fetch. The returned slice is never nil.
func (s *DatasetService) Records(ctx context.Context) []core.Record {
	if data, ok := s.cache.Get(datasetCacheKey); ok {
		return data
	}

	v, err, shared := s.group.Do(datasetCacheKey, func() (any, error) {
		data, err := s.source.Records(ctx)
		if err != nil {
			return nil, err
		}
		if data == nil {
			data = []core.Record{}
		}
		s.cache.Set(datasetCacheKey, data)
		return data, nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Dataset fetch failed, serving empty dataset",
			"error", err,
			"shared", shared)
		return []core.Record{}
	}

	return v.([]core.Record)
}

// Invalidate drops the cached dataset so the next request refetches.
func (s *DatasetService) Invalidate() {
	s.cache.Delete(datasetCacheKey)
	s.logger.Info("Dataset cache invalidated")
}
