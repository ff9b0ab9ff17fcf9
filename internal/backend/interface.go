package backend

import (
	"context"

	"extras/internal/records"
)

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result carries the created record source and its optional cleanup.
type Result struct {
	Source  records.Source
	Cleanup CleanupFunc
}

// Factory creates record sources based on configuration.
type Factory interface {
	CreateSource(ctx context.Context, config Config) (*Result, error)
}

// Config holds what each backend kind needs to come up.
type Config struct {
	Type Type

	// SQLite mirror
	SQLiteDBPath string

	// Memory backend
	DataDirectory string
}

// Type selects where records come from.
type Type string

const (
	SheetsBackend Type = "sheets"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the backend type is one of the known kinds.
func (t Type) IsValid() bool {
	switch t {
	case SheetsBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
