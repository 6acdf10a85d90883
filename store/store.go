// Package store keeps named deck lists in a sqlite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var ErrDeckNotFound = errors.New("deck not found")

type Repository struct {
	Db  *sql.DB
	log *zap.Logger
}

type Deck struct {
	Name      string
	Body      string
	UpdatedAt time.Time
}

// Open opens (creating if needed) the deck library at path. ":memory:" gives
// a private in-memory library.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open deck store: %w", err)
	}
	// One connection keeps ":memory:" databases shared and writes serialized.
	db.SetMaxOpenConns(1)
	repo, err := NewRepository(ctx, db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepository(ctx context.Context, db *sql.DB, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS deck (
			name TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	return &Repository{Db: db, log: logger}, nil
}

func (repo *Repository) Close() error { return repo.Db.Close() }

// Save stores body under name, replacing any deck with the same name.
func (repo *Repository) Save(ctx context.Context, name, body string) error {
	err := repo.execWrap(ctx, `
		INSERT INTO deck(name, body, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, body, time.Now().UnixMilli())
	if err == nil {
		repo.log.Debug("deck saved", zap.String("name", name), zap.Int("bytes", len(body)))
	}
	return err
}

func (repo *Repository) Load(ctx context.Context, name string) (*Deck, error) {
	row := repo.Db.QueryRowContext(ctx, "SELECT name, body, updated_at FROM deck WHERE name = ? LIMIT 1", name)
	var (
		d  Deck
		ms int64
	)
	if err := row.Scan(&d.Name, &d.Body, &ms); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrDeckNotFound, name)
		}
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	d.UpdatedAt = time.UnixMilli(ms)
	return &d, nil
}

// List returns every stored deck ordered by name.
func (repo *Repository) List(ctx context.Context) ([]Deck, error) {
	rows, err := repo.Db.QueryContext(ctx, "SELECT name, body, updated_at FROM deck ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()
	var out []Deck
	for rows.Next() {
		var (
			d  Deck
			ms int64
		)
		if err := rows.Scan(&d.Name, &d.Body, &ms); err != nil {
			return nil, fmt.Errorf("error in db execution: %w", err)
		}
		d.UpdatedAt = time.UnixMilli(ms)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (repo *Repository) Delete(ctx context.Context, name string) error {
	res, err := repo.Db.ExecContext(ctx, "DELETE FROM deck WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrDeckNotFound, name)
	}
	return nil
}

func (repo *Repository) execWrap(ctx context.Context, query string, args ...any) error {
	if _, err := repo.Db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	return nil
}
