package repositories

import (
	"context"
	"fmt"

	"github.com/masternet-io/masternet-engine/pkg/database"
	"github.com/masternet-io/masternet-engine/pkg/models"
)

// PrecioRepository defines data access for price tiers.
type PrecioRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, precios []*models.Precio) error
	ListAll(ctx context.Context) ([]*models.Precio, error)
}

// precioRepository implements PrecioRepository using PostgreSQL.
type precioRepository struct {
	db *database.DB
}

// NewPrecioRepository creates a new price tier repository.
func NewPrecioRepository(db *database.DB) PrecioRepository {
	return &precioRepository{db: db}
}

func (r *precioRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM precios`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count precios: %w", err)
	}
	return count, nil
}

// InsertBatch persists all price tiers in a single transaction.
func (r *precioRepository) InsertBatch(ctx context.Context, precios []*models.Precio) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range precios {
		_, err := tx.Exec(ctx, `
			INSERT INTO precios (id, nombre, precio_actual, precio_promocion)
			VALUES ($1, $2, $3, $4)`,
			p.ID, p.Nombre, p.PrecioActual, p.PrecioPromocion,
		)
		if err != nil {
			return fmt.Errorf("failed to insert precio %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit precios: %w", err)
	}
	return nil
}

func (r *precioRepository) ListAll(ctx context.Context) ([]*models.Precio, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nombre, precio_actual, precio_promocion
		FROM precios`)
	if err != nil {
		return nil, fmt.Errorf("failed to list precios: %w", err)
	}
	defer rows.Close()

	var precios []*models.Precio
	for rows.Next() {
		p := &models.Precio{}
		if err := rows.Scan(&p.ID, &p.Nombre, &p.PrecioActual, &p.PrecioPromocion); err != nil {
			return nil, fmt.Errorf("failed to scan precio: %w", err)
		}
		precios = append(precios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate precios: %w", err)
	}
	return precios, nil
}
