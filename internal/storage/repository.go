// Package storage keeps a local SQLite mirror of the current worksheet so
// the dashboard can serve data when the spreadsheet is unreachable. The
// mirror holds exactly one dataset: each sync replaces it wholesale, so no
// history accumulates.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"extras/internal/core"
	"extras/internal/records"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

var _ records.Source = (*Repository)(nil)

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReplaceAll swaps the mirrored dataset for the given records in one
// transaction. Row positions are preserved so List returns spreadsheet
// order.
func (r *Repository) ReplaceAll(ctx context.Context, items []core.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (row_pos, date, value, collaborator, client, sector, reason, billable, time_in, time_out, transport)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos, rec := range items {
		if _, err := stmt.ExecContext(ctx, pos,
			rec.Date, rec.Value, rec.Collaborator, rec.Client, rec.Sector,
			rec.Reason, string(rec.Billable), rec.TimeIn, rec.TimeOut, string(rec.Transport),
		); err != nil {
			return fmt.Errorf("insert record %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "Mirror dataset replaced", "rows", len(items))
	return nil
}

// Records implements records.Source, returning the mirrored dataset in
// spreadsheet row order.
func (r *Repository) Records(ctx context.Context) ([]core.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, value, collaborator, client, sector, reason, billable, time_in, time_out, transport
		FROM records ORDER BY row_pos`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	out := []core.Record{}
	for rows.Next() {
		var rec core.Record
		var billable, transport string
		if err := rows.Scan(&rec.Date, &rec.Value, &rec.Collaborator, &rec.Client,
			&rec.Sector, &rec.Reason, &billable, &rec.TimeIn, &rec.TimeOut, &transport); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Billable = core.Flag(billable)
		rec.Transport = core.Flag(transport)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// Count returns the number of mirrored rows.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
