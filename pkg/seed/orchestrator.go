package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masternet-io/masternet-engine/pkg/apperrors"
	"github.com/masternet-io/masternet-engine/pkg/fixtures"
	"github.com/masternet-io/masternet-engine/pkg/models"
	"github.com/masternet-io/masternet-engine/pkg/repositories"
)

// Seed group names, in dependency order. Cursos reference precios and
// instructores; calificaciones reference cursos.
const (
	GroupPrecios        = "precios"
	GroupInstructores   = "instructores"
	GroupCursos         = "cursos"
	GroupCalificaciones = "calificaciones"
)

// Status is the terminal state of one group for one orchestration run.
type Status string

const (
	StatusSeeded  Status = "seeded"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome reports what happened to one group.
type Outcome struct {
	Group  string
	Status Status
	Rows   int
	Reason string
}

// Orchestrator drives fixture seeding of all groups in dependency order.
// A group's failure is logged and never prevents later groups from being
// attempted; worst case, a group stays empty until the next run.
type Orchestrator struct {
	store          *fixtures.Store
	precios        repositories.PrecioRepository
	instructores   repositories.InstructorRepository
	cursos         repositories.CursoRepository
	calificaciones repositories.CalificacionRepository
	logger         *zap.Logger
}

// NewOrchestrator creates a seed orchestrator.
func NewOrchestrator(
	store *fixtures.Store,
	precios repositories.PrecioRepository,
	instructores repositories.InstructorRepository,
	cursos repositories.CursoRepository,
	calificaciones repositories.CalificacionRepository,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:          store,
		precios:        precios,
		instructores:   instructores,
		cursos:         cursos,
		calificaciones: calificaciones,
		logger:         logger.Named("seed"),
	}
}

// Run seeds every group in order and returns the per-group outcomes.
// It never returns an error: seeding is best-effort per group.
func (o *Orchestrator) Run(ctx context.Context) []Outcome {
	steps := []struct {
		group string
		fn    func(context.Context) (int, error)
	}{
		{GroupPrecios, o.seedPrecios},
		{GroupInstructores, o.seedInstructores},
		{GroupCursos, o.seedCursos},
		{GroupCalificaciones, o.seedCalificaciones},
	}

	outcomes := make([]Outcome, 0, len(steps))
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, Outcome{
				Group: step.group, Status: StatusFailed, Reason: err.Error(),
			})
			continue
		}
		outcomes = append(outcomes, o.runStep(ctx, step.group, step.fn))
	}
	return outcomes
}

func (o *Orchestrator) runStep(ctx context.Context, group string, fn func(context.Context) (int, error)) Outcome {
	rows, err := fn(ctx)
	switch {
	case err == nil:
		o.logger.Info("Seeded group",
			zap.String("group", group),
			zap.Int("rows", rows))
		return Outcome{Group: group, Status: StatusSeeded, Rows: rows}
	case errors.Is(err, apperrors.ErrAlreadySeeded):
		o.logger.Info("Group already seeded, skipping", zap.String("group", group))
		return Outcome{Group: group, Status: StatusSkipped, Reason: "already seeded"}
	case errors.Is(err, apperrors.ErrFixtureMissing):
		o.logger.Info("No fixture for group, nothing to seed", zap.String("group", group))
		return Outcome{Group: group, Status: StatusSkipped, Reason: "fixture missing"}
	default:
		o.logger.Warn("Failed to seed group",
			zap.String("group", group),
			zap.Error(err))
		return Outcome{Group: group, Status: StatusFailed, Reason: err.Error()}
	}
}

// shouldSeed is the idempotency guard: a group with any rows present is
// skipped entirely, no partial re-seed and no merge. The check is not
// transactional with the insert; concurrent bootstrap runs against one store
// are a deployment-level responsibility.
func shouldSeed(ctx context.Context, count func(context.Context) (int64, error)) error {
	n, err := count(ctx)
	if err != nil {
		return fmt.Errorf("idempotency check failed: %w", err)
	}
	if n > 0 {
		return apperrors.ErrAlreadySeeded
	}
	return nil
}

func (o *Orchestrator) seedPrecios(ctx context.Context) (int, error) {
	if err := shouldSeed(ctx, o.precios.Count); err != nil {
		return 0, err
	}

	raw, err := o.store.Load(fixtures.FilePrecios)
	if err != nil {
		return 0, err
	}

	precios, warnings, err := DecodePrecios(raw)
	if err != nil {
		return 0, err
	}
	o.logWarnings(warnings)

	if len(precios) == 0 {
		return 0, nil
	}
	if err := o.precios.InsertBatch(ctx, precios); err != nil {
		return 0, err
	}
	return len(precios), nil
}

func (o *Orchestrator) seedInstructores(ctx context.Context) (int, error) {
	if err := shouldSeed(ctx, o.instructores.Count); err != nil {
		return 0, err
	}

	raw, err := o.store.Load(fixtures.FileInstructores)
	if err != nil {
		return 0, err
	}

	instructores, warnings, err := DecodeInstructores(raw)
	if err != nil {
		return 0, err
	}
	o.logWarnings(warnings)

	if len(instructores) == 0 {
		return 0, nil
	}
	if err := o.instructores.InsertBatch(ctx, instructores); err != nil {
		return 0, err
	}
	return len(instructores), nil
}

func (o *Orchestrator) seedCursos(ctx context.Context) (int, error) {
	if err := shouldSeed(ctx, o.cursos.Count); err != nil {
		return 0, err
	}

	raw, err := o.store.Load(fixtures.FileCursos)
	if err != nil {
		return 0, err
	}

	decoded, warnings, err := DecodeCursos(raw)
	if err != nil {
		return 0, err
	}
	o.logWarnings(warnings)

	if len(decoded) == 0 {
		return 0, nil
	}

	// Forward references resolve against what is persisted, not against the
	// fixtures: the dependency groups may have been seeded in this run or any
	// earlier one.
	persistedPrecios, err := o.precios.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read back precios: %w", err)
	}
	precioIndex := BuildIndex(persistedPrecios, func(p *models.Precio) uuid.UUID { return p.ID })

	persistedInstructores, err := o.instructores.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read back instructores: %w", err)
	}
	instructorIndex := BuildIndex(persistedInstructores, func(i *models.Instructor) uuid.UUID { return i.ID })

	cursos := make([]*models.Curso, 0, len(decoded))
	var instructorLinks []models.CursoInstructor
	var precioLinks []models.CursoPrecio
	for _, dc := range decoded {
		cursos = append(cursos, dc.Curso)

		for _, id := range dedupe(dc.InstructorIDs) {
			if _, ok := instructorIndex.Resolve(id); !ok {
				o.logger.Warn("Dropped unresolved instructor reference",
					zap.String("curso_id", dc.Curso.ID.String()),
					zap.String("instructor_id", id.String()))
				continue
			}
			instructorLinks = append(instructorLinks, models.CursoInstructor{
				InstructorID: id,
				CursoID:      dc.Curso.ID,
			})
		}

		for _, id := range dedupe(dc.PrecioIDs) {
			if _, ok := precioIndex.Resolve(id); !ok {
				o.logger.Warn("Dropped unresolved precio reference",
					zap.String("curso_id", dc.Curso.ID.String()),
					zap.String("precio_id", id.String()))
				continue
			}
			precioLinks = append(precioLinks, models.CursoPrecio{
				PrecioID: id,
				CursoID:  dc.Curso.ID,
			})
		}
	}

	if err := o.cursos.InsertBatch(ctx, cursos, instructorLinks, precioLinks); err != nil {
		return 0, err
	}
	return len(cursos), nil
}

func (o *Orchestrator) seedCalificaciones(ctx context.Context) (int, error) {
	if err := shouldSeed(ctx, o.calificaciones.Count); err != nil {
		return 0, err
	}

	raw, err := o.store.Load(fixtures.FileCalificaciones)
	if err != nil {
		return 0, err
	}

	decoded, warnings, err := DecodeCalificaciones(raw)
	if err != nil {
		return 0, err
	}
	o.logWarnings(warnings)

	persistedCursos, err := o.cursos.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read back cursos: %w", err)
	}
	cursoIndex := BuildIndex(persistedCursos, func(c *models.Curso) uuid.UUID { return c.ID })

	// A rating requires its owning course; unresolved ones are dropped rather
	// than inserted with a dangling foreign key.
	calificaciones := make([]*models.Calificacion, 0, len(decoded))
	for _, ca := range decoded {
		if _, ok := cursoIndex.Resolve(ca.CursoID); !ok {
			o.logger.Warn("Dropped rating with unresolved course reference",
				zap.String("calificacion_id", ca.ID.String()),
				zap.String("curso_id", ca.CursoID.String()))
			continue
		}
		calificaciones = append(calificaciones, ca)
	}

	if len(calificaciones) == 0 {
		return 0, nil
	}
	if err := o.calificaciones.InsertBatch(ctx, calificaciones); err != nil {
		return 0, err
	}
	return len(calificaciones), nil
}

func (o *Orchestrator) logWarnings(warnings []DecodeWarning) {
	for _, w := range warnings {
		o.logger.Warn("Fixture decode warning",
			zap.String("group", w.Group),
			zap.Int("record", w.Record),
			zap.String("field", w.Field),
			zap.String("reason", w.Reason))
	}
}

// dedupe removes duplicate IDs, preserving first-seen order. Composite
// primary keys on the join tables reject duplicates, so a fixture listing the
// same reference twice must not produce two join rows.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
