package repositories

import (
	"context"
	"fmt"

	"github.com/masternet-io/masternet-engine/pkg/database"
	"github.com/masternet-io/masternet-engine/pkg/models"
)

// InstructorRepository defines data access for instructors.
type InstructorRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, instructores []*models.Instructor) error
	ListAll(ctx context.Context) ([]*models.Instructor, error)
}

type instructorRepository struct {
	db *database.DB
}

// NewInstructorRepository creates a new instructor repository.
func NewInstructorRepository(db *database.DB) InstructorRepository {
	return &instructorRepository{db: db}
}

func (r *instructorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM instructores`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count instructores: %w", err)
	}
	return count, nil
}

// InsertBatch persists all instructors in a single transaction.
func (r *instructorRepository) InsertBatch(ctx context.Context, instructores []*models.Instructor) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, ins := range instructores {
		_, err := tx.Exec(ctx, `
			INSERT INTO instructores (id, nombre, apellidos, grado)
			VALUES ($1, $2, $3, $4)`,
			ins.ID, ins.Nombre, ins.Apellidos, ins.Grado,
		)
		if err != nil {
			return fmt.Errorf("failed to insert instructor %s: %w", ins.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit instructores: %w", err)
	}
	return nil
}

func (r *instructorRepository) ListAll(ctx context.Context) ([]*models.Instructor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nombre, apellidos, grado
		FROM instructores`)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructores: %w", err)
	}
	defer rows.Close()

	var instructores []*models.Instructor
	for rows.Next() {
		ins := &models.Instructor{}
		if err := rows.Scan(&ins.ID, &ins.Nombre, &ins.Apellidos, &ins.Grado); err != nil {
			return nil, fmt.Errorf("failed to scan instructor: %w", err)
		}
		instructores = append(instructores, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate instructores: %w", err)
	}
	return instructores, nil
}
