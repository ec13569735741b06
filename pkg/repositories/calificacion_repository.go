package repositories

import (
	"context"
	"fmt"

	"github.com/masternet-io/masternet-engine/pkg/database"
	"github.com/masternet-io/masternet-engine/pkg/models"
)

// CalificacionRepository defines data access for course ratings.
type CalificacionRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, calificaciones []*models.Calificacion) error
}

type calificacionRepository struct {
	db *database.DB
}

// NewCalificacionRepository creates a new rating repository.
func NewCalificacionRepository(db *database.DB) CalificacionRepository {
	return &calificacionRepository{db: db}
}

func (r *calificacionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM calificaciones`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count calificaciones: %w", err)
	}
	return count, nil
}

// InsertBatch persists all ratings in a single transaction.
func (r *calificacionRepository) InsertBatch(ctx context.Context, calificaciones []*models.Calificacion) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, ca := range calificaciones {
		_, err := tx.Exec(ctx, `
			INSERT INTO calificaciones (id, alumno, comentario, puntaje, curso_id)
			VALUES ($1, $2, $3, $4, $5)`,
			ca.ID, ca.Alumno, ca.Comentario, ca.Puntaje, ca.CursoID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert calificacion %s: %w", ca.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit calificaciones: %w", err)
	}
	return nil
}
