package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"extras/internal/core"
)

type stubSource struct {
	mu      sync.Mutex
	data    []core.Record
	err     error
	calls   atomic.Int64
	latency time.Duration
}

func (s *stubSource) Records(ctx context.Context) ([]core.Record, error) {
	s.calls.Add(1)
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func TestRecordsCachesFetch(t *testing.T) {
	src := &stubSource{data: []core.Record{{Collaborator: "João", Value: 100}}}
	svc := NewDatasetService(src, time.Minute, nil)

	first := svc.Records(context.Background())
	second := svc.Records(context.Background())

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 record from both calls, got %d and %d", len(first), len(second))
	}
	if got := src.calls.Load(); got != 1 {
		t.Errorf("expected 1 source fetch, got %d", got)
	}
}

func TestRecordsAbsorbsSourceFailure(t *testing.T) {
	src := &stubSource{err: errors.New("sheet unreachable")}
	svc := NewDatasetService(src, time.Minute, nil)

	got := svc.Records(context.Background())
	if got == nil {
		t.Fatal("expected non-nil slice on failure")
	}
	if len(got) != 0 {
		t.Errorf("expected empty dataset on failure, got %d records", len(got))
	}
}

func TestRecordsFailureIsNotCached(t *testing.T) {
	src := &stubSource{err: errors.New("temporary outage")}
	svc := NewDatasetService(src, time.Minute, nil)

	svc.Records(context.Background())

	src.mu.Lock()
	src.err = nil
	src.data = []core.Record{{Collaborator: "Maria", Value: 50}}
	src.mu.Unlock()

	got := svc.Records(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected recovery after outage, got %d records", len(got))
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	src := &stubSource{data: []core.Record{{Collaborator: "Ana"}}}
	svc := NewDatasetService(src, time.Minute, nil)

	svc.Records(context.Background())
	svc.Invalidate()
	svc.Records(context.Background())

	if got := src.calls.Load(); got != 2 {
		t.Errorf("expected 2 source fetches after invalidation, got %d", got)
	}
}

func TestConcurrentColdCallsShareOneFetch(t *testing.T) {
	src := &stubSource{
		data:    []core.Record{{Collaborator: "Pedro"}},
		latency: 50 * time.Millisecond,
	}
	svc := NewDatasetService(src, time.Minute, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Records(context.Background())
		}()
	}
	wg.Wait()

	if got := src.calls.Load(); got != 1 {
		t.Errorf("expected a single shared fetch, got %d", got)
	}
}
