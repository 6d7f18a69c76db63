package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteShapeStore is the ShapeStore implementation backed by a SQLite
// database file.
type SQLiteShapeStore struct {
	db *sql.DB
}

// Compile-time check that the implementation satisfies the interface.
var _ ShapeStore = (*SQLiteShapeStore)(nil)

// Open opens (creating if necessary) the SQLite database at path and
// applies the embedded migrations.
func Open(path string) (*SQLiteShapeStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("gallery path is required")
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open gallery database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping gallery database: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run gallery migrations: %w", err)
	}

	return &SQLiteShapeStore{db: db}, nil
}

// Close closes the underlying database handle.
func (s *SQLiteShapeStore) Close() error {
	return s.db.Close()
}

// Save implements ShapeStore.
func (s *SQLiteShapeStore) Save(ctx context.Context, record *ShapeRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shapes (id, kind, x, y, payload, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID.String(),
		record.Kind,
		record.X,
		record.Y,
		string(record.Payload),
		record.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save shape %s: %w", record.ID, err)
	}
	return nil
}

// List implements ShapeStore, returning records ordered by creation
// time with the ID as a tiebreaker.
func (s *SQLiteShapeStore) List(ctx context.Context) ([]*ShapeRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, x, y, payload, created_at FROM shapes ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shapes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*ShapeRecord
	for rows.Next() {
		record, err := scanShape(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shapes: %w", err)
	}
	return records, nil
}

// Get implements ShapeStore.
func (s *SQLiteShapeStore) Get(ctx context.Context, id uuid.UUID) (*ShapeRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, x, y, payload, created_at FROM shapes WHERE id = ?`, id.String())

	record, err := scanShape(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShapeNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Delete implements ShapeStore.
func (s *SQLiteShapeStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM shapes WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete shape %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrShapeNotFound
	}
	return nil
}

// DeleteAll implements ShapeStore.
func (s *SQLiteShapeStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM shapes`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear gallery: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check clear result: %w", err)
	}
	return affected, nil
}

// scanShape maps one row onto a ShapeRecord. Accepting the Scan
// function lets it serve both *sql.Row and *sql.Rows.
func scanShape(scan func(dest ...any) error) (*ShapeRecord, error) {
	var (
		idText    string
		kind      string
		x, y      int
		payload   string
		createdAt int64
	)
	if err := scan(&idText, &kind, &x, &y, &payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan shape row: %w", err)
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored shape ID %q: %w", idText, err)
	}

	return &ShapeRecord{
		ID:        id,
		Kind:      kind,
		X:         x,
		Y:         y,
		Payload:   json.RawMessage(payload),
		CreatedAt: time.UnixMilli(createdAt).UTC(),
	}, nil
}
