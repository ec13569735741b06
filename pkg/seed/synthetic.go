package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/masternet-io/masternet-engine/pkg/models"
	"github.com/masternet-io/masternet-engine/pkg/repositories"
)

// Synthetic generates development data with a faker instead of fixtures.
// It is a separate bootstrap mode behind its own entry point and is never
// interleaved with the fixture-driven orchestrator; each entity kind carries
// its own "table is empty" guard.
type Synthetic struct {
	precios        repositories.PrecioRepository
	instructores   repositories.InstructorRepository
	cursos         repositories.CursoRepository
	calificaciones repositories.CalificacionRepository
	logger         *zap.Logger
	faker          *gofakeit.Faker

	numInstructores int
	numCursos       int
	ratingsPerCurso int
}

// NewSynthetic creates the synthetic data generator. A zero seed gives
// non-deterministic data; tests pass a fixed seed.
func NewSynthetic(
	precios repositories.PrecioRepository,
	instructores repositories.InstructorRepository,
	cursos repositories.CursoRepository,
	calificaciones repositories.CalificacionRepository,
	logger *zap.Logger,
	seed uint64,
) *Synthetic {
	return &Synthetic{
		precios:         precios,
		instructores:    instructores,
		cursos:          cursos,
		calificaciones:  calificaciones,
		logger:          logger.Named("devseed"),
		faker:           gofakeit.New(seed),
		numInstructores: 5,
		numCursos:       10,
		ratingsPerCurso: 10,
	}
}

// Run populates any empty entity table with generated data. Every course is
// linked to every generated instructor and price tier, matching the shape of
// a fully cross-linked development catalog.
func (g *Synthetic) Run(ctx context.Context) error {
	if err := g.seedInstructores(ctx); err != nil {
		return err
	}
	if err := g.seedPrecios(ctx); err != nil {
		return err
	}
	if err := g.seedCursos(ctx); err != nil {
		return err
	}
	return g.seedCalificaciones(ctx)
}

func (g *Synthetic) seedInstructores(ctx context.Context) error {
	n, err := g.instructores.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count instructores: %w", err)
	}
	if n > 0 {
		return nil
	}

	instructores := make([]*models.Instructor, 0, g.numInstructores)
	for i := 0; i < g.numInstructores; i++ {
		instructores = append(instructores, &models.Instructor{
			ID:        uuid.New(),
			Nombre:    g.faker.FirstName(),
			Apellidos: g.faker.LastName(),
			Grado:     g.faker.Company(),
		})
	}
	if err := g.instructores.InsertBatch(ctx, instructores); err != nil {
		return fmt.Errorf("failed to insert synthetic instructores: %w", err)
	}
	g.logger.Info("Generated instructores", zap.Int("count", len(instructores)))
	return nil
}

func (g *Synthetic) seedPrecios(ctx context.Context) error {
	n, err := g.precios.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count precios: %w", err)
	}
	if n > 0 {
		return nil
	}

	precios := []*models.Precio{
		{ID: uuid.New(), Nombre: "Básico", PrecioActual: decimal.RequireFromString("29.99"), PrecioPromocion: decimal.RequireFromString("19.99")},
		{ID: uuid.New(), Nombre: "Intermedio", PrecioActual: decimal.RequireFromString("49.99"), PrecioPromocion: decimal.RequireFromString("39.99")},
		{ID: uuid.New(), Nombre: "Avanzado", PrecioActual: decimal.RequireFromString("79.99"), PrecioPromocion: decimal.RequireFromString("59.99")},
	}
	if err := g.precios.InsertBatch(ctx, precios); err != nil {
		return fmt.Errorf("failed to insert synthetic precios: %w", err)
	}
	g.logger.Info("Generated precios", zap.Int("count", len(precios)))
	return nil
}

func (g *Synthetic) seedCursos(ctx context.Context) error {
	n, err := g.cursos.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count cursos: %w", err)
	}
	if n > 0 {
		return nil
	}

	instructores, err := g.instructores.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list instructores: %w", err)
	}
	precios, err := g.precios.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list precios: %w", err)
	}

	now := time.Now()
	cursos := make([]*models.Curso, 0, g.numCursos)
	var instructorLinks []models.CursoInstructor
	var precioLinks []models.CursoPrecio
	for i := 0; i < g.numCursos; i++ {
		titulo := g.faker.ProductName()
		descripcion := g.faker.ProductDescription()
		fecha := g.faker.DateRange(now.AddDate(-2, 0, 0), now)
		curso := &models.Curso{
			ID:               uuid.New(),
			Titulo:           &titulo,
			Descripcion:      &descripcion,
			FechaPublicacion: &fecha,
		}
		cursos = append(cursos, curso)

		for _, ins := range instructores {
			instructorLinks = append(instructorLinks, models.CursoInstructor{
				InstructorID: ins.ID,
				CursoID:      curso.ID,
			})
		}
		for _, p := range precios {
			precioLinks = append(precioLinks, models.CursoPrecio{
				PrecioID: p.ID,
				CursoID:  curso.ID,
			})
		}
	}

	if err := g.cursos.InsertBatch(ctx, cursos, instructorLinks, precioLinks); err != nil {
		return fmt.Errorf("failed to insert synthetic cursos: %w", err)
	}
	g.logger.Info("Generated cursos", zap.Int("count", len(cursos)))
	return nil
}

func (g *Synthetic) seedCalificaciones(ctx context.Context) error {
	n, err := g.calificaciones.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count calificaciones: %w", err)
	}
	if n > 0 {
		return nil
	}

	cursos, err := g.cursos.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cursos: %w", err)
	}

	var calificaciones []*models.Calificacion
	for _, curso := range cursos {
		for i := 0; i < g.ratingsPerCurso; i++ {
			calificaciones = append(calificaciones, &models.Calificacion{
				ID:         uuid.New(),
				Alumno:     g.faker.Name(),
				Comentario: g.faker.Sentence(8),
				Puntaje:    g.faker.Number(1, 5),
				CursoID:    curso.ID,
			})
		}
	}

	if len(calificaciones) == 0 {
		return nil
	}
	if err := g.calificaciones.InsertBatch(ctx, calificaciones); err != nil {
		return fmt.Errorf("failed to insert synthetic calificaciones: %w", err)
	}
	g.logger.Info("Generated calificaciones", zap.Int("count", len(calificaciones)))
	return nil
}
