package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/internal/models"
	"github.com/SscSPs/currency_board/internal/utils/mapping"

	_ "github.com/glebarez/go-sqlite"
)

// SymbolRepository persists the symbol catalog in a local SQLite file.
type SymbolRepository struct {
	db *sql.DB
}

// Ensure implementation matches interface
var _ portsrepo.SymbolRepositoryFacade = (*SymbolRepository)(nil)

// NewSymbolRepository opens (or creates) the database at dbPath with WAL mode enabled.
func NewSymbolRepository(dbPath string) (*SymbolRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// SQLite allows a single writer; one connection keeps pragmas and writes consistent.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS symbols (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			is_favorite INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			last_updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create symbols table: %w", err)
	}

	return &SymbolRepository{db: db}, nil
}

// Close releases the database handle.
func (r *SymbolRepository) Close() error {
	return r.db.Close()
}

func (r *SymbolRepository) HasAnySymbols(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM symbols)").Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check symbols: %w", err)
	}
	return exists, nil
}

func (r *SymbolRepository) GetAllSymbols(ctx context.Context) ([]domain.Symbol, error) {
	return r.querySymbols(ctx, "SELECT code, name, is_favorite, created_at, last_updated_at FROM symbols ORDER BY name, code")
}

func (r *SymbolRepository) GetAllFavorites(ctx context.Context) ([]domain.Symbol, error) {
	return r.querySymbols(ctx, "SELECT code, name, is_favorite, created_at, last_updated_at FROM symbols WHERE is_favorite = 1 ORDER BY name, code")
}

func (r *SymbolRepository) querySymbols(ctx context.Context, query string) ([]domain.Symbol, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	out := make([]models.Symbol, 0)
	for rows.Next() {
		var m models.Symbol
		var createdAt, updatedAt int64
		if err := rows.Scan(&m.Code, &m.Name, &m.IsFavorite, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		m.CreatedAt = time.UnixMilli(createdAt)
		m.LastUpdatedAt = time.UnixMilli(updatedAt)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate symbols: %w", err)
	}
	return mapping.ToDomainSymbolSlice(out), nil
}

func (r *SymbolRepository) IsFavorite(ctx context.Context, code string) (bool, error) {
	var fav bool
	err := r.db.QueryRowContext(ctx, "SELECT is_favorite FROM symbols WHERE code = ?", code).Scan(&fav)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperrors.ErrNotFound
		}
		return false, fmt.Errorf("failed to read favorite flag for %s: %w", code, err)
	}
	return fav, nil
}

// InsertSymbols upserts the whole catalog in one transaction and keeps existing favorite flags.
func (r *SymbolRepository) InsertSymbols(ctx context.Context, symbols []domain.Symbol) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO symbols (code, name, is_favorite, created_at, last_updated_at) VALUES (?, ?, 0, ?, ?) "+
			"ON CONFLICT(code) DO UPDATE SET name=excluded.name, last_updated_at=excluded.last_updated_at")
	if err != nil {
		return fmt.Errorf("failed to prepare symbol upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UnixMilli()
	for _, s := range symbols {
		m := mapping.ToModelSymbol(s)
		if _, err = stmt.ExecContext(ctx, m.Code, m.Name, now, now); err != nil {
			return fmt.Errorf("failed to upsert symbol %s: %w", m.Code, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit symbols: %w", err)
	}
	return nil
}

func (r *SymbolRepository) SetFavorite(ctx context.Context, code string, isFavorite bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE symbols SET is_favorite = ?, last_updated_at = ? WHERE code = ?",
		isFavorite, time.Now().UnixMilli(), code)
	if err != nil {
		return fmt.Errorf("failed to set favorite flag for %s: %w", code, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
