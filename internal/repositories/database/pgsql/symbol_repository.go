package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/SscSPs/currency_board/internal/models"
	"github.com/SscSPs/currency_board/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSymbolRepository struct {
	BaseRepository
}

// newPgxSymbolRepository creates a new repository for the symbol catalog.
func newPgxSymbolRepository(pool *pgxpool.Pool) portsrepo.SymbolRepositoryWithTx {
	return &PgxSymbolRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SymbolRepositoryWithTx = (*PgxSymbolRepository)(nil)

const symbolSelectQuery = `
SELECT code, name, is_favorite, created_at, last_updated_at
FROM symbols
`

func (r *PgxSymbolRepository) getSymbols(ctx context.Context, filterQuery string, args ...any) ([]domain.Symbol, error) {
	rows, err := r.Pool.Query(ctx, symbolSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	modelSymbols, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Symbol])
	if err != nil {
		return nil, fmt.Errorf("failed to scan symbols: %w", err)
	}
	return mapping.ToDomainSymbolSlice(modelSymbols), nil
}

func (r *PgxSymbolRepository) HasAnySymbols(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM symbols)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check symbols: %w", err)
	}
	return exists, nil
}

func (r *PgxSymbolRepository) GetAllSymbols(ctx context.Context) ([]domain.Symbol, error) {
	return r.getSymbols(ctx, `ORDER BY name, code;`)
}

func (r *PgxSymbolRepository) GetAllFavorites(ctx context.Context) ([]domain.Symbol, error) {
	return r.getSymbols(ctx, `WHERE is_favorite ORDER BY name, code;`)
}

func (r *PgxSymbolRepository) IsFavorite(ctx context.Context, code string) (bool, error) {
	var fav bool
	err := r.Pool.QueryRow(ctx, `SELECT is_favorite FROM symbols WHERE code = $1;`, code).Scan(&fav)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrNotFound
		}
		return false, fmt.Errorf("failed to read favorite flag for %s: %w", code, err)
	}
	return fav, nil
}

// InsertSymbols upserts the whole catalog in one transaction. The name of an
// existing row is refreshed, its favorite flag is left alone.
func (r *PgxSymbolRepository) InsertSymbols(ctx context.Context, symbols []domain.Symbol) error {
	query := `
		INSERT INTO symbols (code, name, is_favorite, created_at, last_updated_at)
		VALUES ($1, $2, FALSE, NOW(), NOW())
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	return r.withTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, s := range symbols {
			m := mapping.ToModelSymbol(s)
			batch.Queue(query, m.Code, m.Name)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to upsert %d symbols: %w", len(symbols), err)
		}
		return nil
	})
}

func (r *PgxSymbolRepository) SetFavorite(ctx context.Context, code string, isFavorite bool) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE symbols SET is_favorite = $2, last_updated_at = NOW() WHERE code = $1;`,
		code, isFavorite)
	if err != nil {
		return fmt.Errorf("failed to set favorite flag for %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
