package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"extras/internal/core"
)

func TestNewFromGridNormalizes(t *testing.T) {
	g := core.Grid{
		Headers: []string{"Data", "Colaborador", "Valor", "Cobrar"},
		Rows: [][]string{
			{"2024-03-12", "João", "R$ 1.500,25", "sim"},
		},
	}
	store := NewFromGrid(g)

	got, err := store.Records(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Value != 1500.25 {
		t.Errorf("expected value 1500.25, got %v", got[0].Value)
	}
	if got[0].Billable != core.Yes {
		t.Errorf("expected billable Sim, got %v", got[0].Billable)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	store := New([]core.Record{{Collaborator: "Maria"}})

	first, _ := store.Records(context.Background())
	first[0].Collaborator = "mutated"

	second, _ := store.Records(context.Background())
	if second[0].Collaborator != "Maria" {
		t.Error("mutating a returned slice must not affect the store")
	}
}

func TestNewFromFilesMissingDirectory(t *testing.T) {
	store := NewFromFiles("does-not-exist")

	got, err := store.Records(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty store, got %d records", len(got))
	}
}

func TestNewFromFilesReadsSampleCSV(t *testing.T) {
	dir := t.TempDir()
	csv := "Data,Colaborador,Valor\n2024-01-05,Ana,\"R$ 200,00\"\n2024-01-06,Rui,\"R$ 50,50\"\n"
	if err := os.WriteFile(filepath.Join(dir, "sample.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFromFiles(dir)
	got, err := store.Records(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[1].Value != 50.5 {
		t.Errorf("expected 50.5, got %v", got[1].Value)
	}
}

func TestReplaceSwapsDataset(t *testing.T) {
	store := New([]core.Record{{Collaborator: "Old"}})
	store.Replace([]core.Record{{Collaborator: "A"}, {Collaborator: "B"}})

	got, _ := store.Records(context.Background())
	if len(got) != 2 || got[0].Collaborator != "A" {
		t.Errorf("expected replaced dataset, got %v", got)
	}
}
