package seed

import (
	"context"

	"github.com/google/uuid"

	"github.com/masternet-io/masternet-engine/pkg/models"
)

// In-memory repository fakes shared by the seed package tests.

type fakePrecioRepo struct {
	precios   []*models.Precio
	insertErr error
	countErr  error
}

func (f *fakePrecioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.precios)), f.countErr
}

func (f *fakePrecioRepo) InsertBatch(_ context.Context, precios []*models.Precio) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.precios = append(f.precios, precios...)
	return nil
}

func (f *fakePrecioRepo) ListAll(_ context.Context) ([]*models.Precio, error) {
	return f.precios, nil
}

type fakeInstructorRepo struct {
	instructores []*models.Instructor
	insertErr    error
}

func (f *fakeInstructorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.instructores)), nil
}

func (f *fakeInstructorRepo) InsertBatch(_ context.Context, instructores []*models.Instructor) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.instructores = append(f.instructores, instructores...)
	return nil
}

func (f *fakeInstructorRepo) ListAll(_ context.Context) ([]*models.Instructor, error) {
	return f.instructores, nil
}

type fakeCursoRepo struct {
	cursos          []*models.Curso
	instructorLinks []models.CursoInstructor
	precioLinks     []models.CursoPrecio
	insertErr       error
}

func (f *fakeCursoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.cursos)), nil
}

func (f *fakeCursoRepo) InsertBatch(_ context.Context, cursos []*models.Curso, instructores []models.CursoInstructor, precios []models.CursoPrecio) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.cursos = append(f.cursos, cursos...)
	f.instructorLinks = append(f.instructorLinks, instructores...)
	f.precioLinks = append(f.precioLinks, precios...)
	return nil
}

func (f *fakeCursoRepo) ListAll(_ context.Context) ([]*models.Curso, error) {
	return f.cursos, nil
}

type fakeCalificacionRepo struct {
	calificaciones []*models.Calificacion
	insertErr      error
	countCalled    bool
}

func (f *fakeCalificacionRepo) Count(_ context.Context) (int64, error) {
	f.countCalled = true
	return int64(len(f.calificaciones)), nil
}

func (f *fakeCalificacionRepo) InsertBatch(_ context.Context, calificaciones []*models.Calificacion) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.calificaciones = append(f.calificaciones, calificaciones...)
	return nil
}

type fakeIdentityRepo struct {
	roles       []*models.Role
	users       []*models.User
	claims      []*models.RoleClaim
	assignments map[uuid.UUID]uuid.UUID

	anyUsersErr   error
	failClaimOn   string
	createUserErr error
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{assignments: make(map[uuid.UUID]uuid.UUID)}
}

func (f *fakeIdentityRepo) AnyUsers(_ context.Context) (bool, error) {
	return len(f.users) > 0, f.anyUsersErr
}

func (f *fakeIdentityRepo) RoleExists(_ context.Context, name string) (bool, error) {
	for _, r := range f.roles {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeIdentityRepo) CreateRole(_ context.Context, role *models.Role) error {
	f.roles = append(f.roles, role)
	return nil
}

func (f *fakeIdentityRepo) CreateUser(_ context.Context, user *models.User) error {
	if f.createUserErr != nil {
		return f.createUserErr
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeIdentityRepo) AssignRole(_ context.Context, userID, roleID uuid.UUID) error {
	f.assignments[userID] = roleID
	return nil
}

func (f *fakeIdentityRepo) AddRoleClaim(_ context.Context, claim *models.RoleClaim) error {
	if f.failClaimOn != "" && claim.ClaimValue == f.failClaimOn {
		return context.DeadlineExceeded
	}
	f.claims = append(f.claims, claim)
	return nil
}
