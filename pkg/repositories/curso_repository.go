package repositories

import (
	"context"
	"fmt"

	"github.com/masternet-io/masternet-engine/pkg/database"
	"github.com/masternet-io/masternet-engine/pkg/models"
)

// CursoRepository defines data access for courses and their join relations.
type CursoRepository interface {
	Count(ctx context.Context) (int64, error)
	// InsertBatch persists courses and their instructor/price joins as a
	// single unit. Both referenced IDs of every join must already exist.
	InsertBatch(ctx context.Context, cursos []*models.Curso, instructores []models.CursoInstructor, precios []models.CursoPrecio) error
	ListAll(ctx context.Context) ([]*models.Curso, error)
}

type cursoRepository struct {
	db *database.DB
}

// NewCursoRepository creates a new course repository.
func NewCursoRepository(db *database.DB) CursoRepository {
	return &cursoRepository{db: db}
}

func (r *cursoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cursos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cursos: %w", err)
	}
	return count, nil
}

func (r *cursoRepository) InsertBatch(ctx context.Context, cursos []*models.Curso, instructores []models.CursoInstructor, precios []models.CursoPrecio) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range cursos {
		_, err := tx.Exec(ctx, `
			INSERT INTO cursos (id, titulo, descripcion, fecha_publicacion)
			VALUES ($1, $2, $3, $4)`,
			c.ID, c.Titulo, c.Descripcion, c.FechaPublicacion,
		)
		if err != nil {
			return fmt.Errorf("failed to insert curso %s: %w", c.ID, err)
		}
	}

	for _, link := range instructores {
		_, err := tx.Exec(ctx, `
			INSERT INTO cursos_instructores (instructor_id, curso_id)
			VALUES ($1, $2)`,
			link.InstructorID, link.CursoID,
		)
		if err != nil {
			return fmt.Errorf("failed to link instructor %s to curso %s: %w", link.InstructorID, link.CursoID, err)
		}
	}

	for _, link := range precios {
		_, err := tx.Exec(ctx, `
			INSERT INTO cursos_precios (precio_id, curso_id)
			VALUES ($1, $2)`,
			link.PrecioID, link.CursoID,
		)
		if err != nil {
			return fmt.Errorf("failed to link precio %s to curso %s: %w", link.PrecioID, link.CursoID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cursos: %w", err)
	}
	return nil
}

func (r *cursoRepository) ListAll(ctx context.Context) ([]*models.Curso, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, titulo, descripcion, fecha_publicacion
		FROM cursos`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cursos: %w", err)
	}
	defer rows.Close()

	var cursos []*models.Curso
	for rows.Next() {
		c := &models.Curso{}
		if err := rows.Scan(&c.ID, &c.Titulo, &c.Descripcion, &c.FechaPublicacion); err != nil {
			return nil, fmt.Errorf("failed to scan curso: %w", err)
		}
		cursos = append(cursos, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cursos: %w", err)
	}
	return cursos, nil
}
