package worker

import (
	"context"
	"errors"
	"testing"

	"extras/internal/core"
)

type fakeSource struct {
	data []core.Record
	err  error
}

func (f *fakeSource) Records(ctx context.Context) ([]core.Record, error) {
	return f.data, f.err
}

type fakeMirror struct {
	replaced [][]core.Record
	err      error
}

func (f *fakeMirror) ReplaceAll(ctx context.Context, items []core.Record) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = append(f.replaced, items)
	return nil
}

type fakePublisher struct {
	published []int
	err       error
}

func (f *fakePublisher) PublishRefresh(ctx context.Context, reason string, rows int) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, rows)
	return nil
}

func TestRunOnceSyncsAndPublishes(t *testing.T) {
	src := &fakeSource{data: []core.Record{{Collaborator: "João"}, {Collaborator: "Maria"}}}
	mirror := &fakeMirror{}
	pub := &fakePublisher{}
	w := NewRefreshWorker(src, mirror, pub, nil)

	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mirror.replaced) != 1 || len(mirror.replaced[0]) != 2 {
		t.Errorf("expected one replace with 2 rows, got %v", mirror.replaced)
	}
	if len(pub.published) != 1 || pub.published[0] != 2 {
		t.Errorf("expected one publish with 2 rows, got %v", pub.published)
	}
}

func TestRunOnceFetchFailureSkipsMirror(t *testing.T) {
	src := &fakeSource{err: errors.New("sheet down")}
	mirror := &fakeMirror{}
	w := NewRefreshWorker(src, mirror, nil, nil)

	if err := w.RunOnce(context.Background()); err == nil {
		t.Fatal("expected error when fetch fails")
	}
	if len(mirror.replaced) != 0 {
		t.Errorf("mirror must not be touched on fetch failure, got %v", mirror.replaced)
	}
}

func TestRunOncePublishFailureIsNotFatal(t *testing.T) {
	src := &fakeSource{data: []core.Record{{Collaborator: "Ana"}}}
	mirror := &fakeMirror{}
	pub := &fakePublisher{err: errors.New("broker down")}
	w := NewRefreshWorker(src, mirror, pub, nil)

	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("publish failure should not fail the sync: %v", err)
	}
	if len(mirror.replaced) != 1 {
		t.Errorf("expected mirror updated despite publish failure")
	}
}

func TestRunOnceWithoutPublisher(t *testing.T) {
	src := &fakeSource{data: []core.Record{}}
	mirror := &fakeMirror{}
	w := NewRefreshWorker(src, mirror, nil, nil)

	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mirror.replaced) != 1 {
		t.Errorf("expected mirror replace even with empty dataset")
	}
}
