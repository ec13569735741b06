package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masternet-io/masternet-engine/pkg/models"
	"github.com/masternet-io/masternet-engine/pkg/testhelpers"
)

func TestPrecioRepository_RoundTrip(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, tdb.DB)
	ctx := context.Background()

	repo := NewPrecioRepository(tdb.DB)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	precios := []*models.Precio{
		{
			ID:              uuid.New(),
			Nombre:          "Básico",
			PrecioActual:    decimal.RequireFromString("29.99"),
			PrecioPromocion: decimal.RequireFromString("19.99"),
		},
		{
			ID:              uuid.New(),
			Nombre:          "Avanzado",
			PrecioActual:    decimal.RequireFromString("79.99"),
			PrecioPromocion: decimal.RequireFromString("59.99"),
		},
	}
	require.NoError(t, repo.InsertBatch(ctx, precios))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	listed, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	byID := make(map[uuid.UUID]*models.Precio, len(listed))
	for _, p := range listed {
		byID[p.ID] = p
	}
	got, ok := byID[precios[0].ID]
	require.True(t, ok)
	assert.Equal(t, "Básico", got.Nombre)
	// NUMERIC columns round-trip exactly through the decimal codec
	assert.True(t, got.PrecioActual.Equal(decimal.RequireFromString("29.99")))
	assert.True(t, got.PrecioPromocion.Equal(decimal.RequireFromString("19.99")))
}

func TestPrecioRepository_InsertBatchIsAtomic(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, tdb.DB)
	ctx := context.Background()

	repo := NewPrecioRepository(tdb.DB)

	dup := uuid.New()
	precios := []*models.Precio{
		{ID: dup, Nombre: "Uno", PrecioActual: decimal.New(1, 0), PrecioPromocion: decimal.New(1, 0)},
		{ID: dup, Nombre: "Dos", PrecioActual: decimal.New(2, 0), PrecioPromocion: decimal.New(2, 0)},
	}
	require.Error(t, repo.InsertBatch(ctx, precios))

	// Nothing from the failed batch is visible
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCursoRepository_InsertWithJoins(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, tdb.DB)
	ctx := context.Background()

	precioRepo := NewPrecioRepository(tdb.DB)
	instructorRepo := NewInstructorRepository(tdb.DB)
	cursoRepo := NewCursoRepository(tdb.DB)

	precio := &models.Precio{
		ID:              uuid.New(),
		Nombre:          "Básico",
		PrecioActual:    decimal.RequireFromString("29.99"),
		PrecioPromocion: decimal.RequireFromString("19.99"),
	}
	require.NoError(t, precioRepo.InsertBatch(ctx, []*models.Precio{precio}))

	instructor := &models.Instructor{
		ID:        uuid.New(),
		Nombre:    "Lucía",
		Apellidos: "Fernández",
		Grado:     "Doctora",
	}
	require.NoError(t, instructorRepo.InsertBatch(ctx, []*models.Instructor{instructor}))

	titulo := "Introducción a Go"
	descripcion := "Fundamentos del lenguaje"
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	curso := &models.Curso{
		ID:               uuid.New(),
		Titulo:           &titulo,
		Descripcion:      &descripcion,
		FechaPublicacion: &fecha,
	}
	require.NoError(t, cursoRepo.InsertBatch(ctx,
		[]*models.Curso{curso},
		[]models.CursoInstructor{{InstructorID: instructor.ID, CursoID: curso.ID}},
		[]models.CursoPrecio{{PrecioID: precio.ID, CursoID: curso.ID}},
	))

	listed, err := cursoRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Titulo)
	assert.Equal(t, titulo, *listed[0].Titulo)
	require.NotNil(t, listed[0].FechaPublicacion)
	assert.True(t, fecha.Equal(*listed[0].FechaPublicacion))

	var joins int
	require.NoError(t, tdb.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM cursos_instructores WHERE curso_id = $1`, curso.ID).Scan(&joins))
	assert.Equal(t, 1, joins)
	require.NoError(t, tdb.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM cursos_precios WHERE curso_id = $1`, curso.ID).Scan(&joins))
	assert.Equal(t, 1, joins)
}

func TestCursoRepository_DanglingJoinRollsBackWholeBatch(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, tdb.DB)
	ctx := context.Background()

	cursoRepo := NewCursoRepository(tdb.DB)

	titulo := "Curso huérfano"
	curso := &models.Curso{ID: uuid.New(), Titulo: &titulo}
	err := cursoRepo.InsertBatch(ctx,
		[]*models.Curso{curso},
		[]models.CursoInstructor{{InstructorID: uuid.New(), CursoID: curso.ID}},
		nil,
	)
	require.Error(t, err)

	// The course itself is rolled back together with the bad join
	n, err := cursoRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCursoRepository_NullableFieldsRoundTrip(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, tdb.DB)
	ctx := context.Background()

	cursoRepo := NewCursoRepository(tdb.DB)

	curso := &models.Curso{ID: uuid.New()}
	require.NoError(t, cursoRepo.InsertBatch(ctx, []*models.Curso{curso}, nil, nil))

	listed, err := cursoRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].Titulo)
	assert.Nil(t, listed[0].Descripcion)
	assert.Nil(t, listed[0].FechaPublicacion)
}

func TestCalificacionRepository_RequiresExistingCourse(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, tdb.DB)
	ctx := context.Background()

	cursoRepo := NewCursoRepository(tdb.DB)
	calRepo := NewCalificacionRepository(tdb.DB)

	titulo := "Go"
	curso := &models.Curso{ID: uuid.New(), Titulo: &titulo}
	require.NoError(t, cursoRepo.InsertBatch(ctx, []*models.Curso{curso}, nil, nil))

	require.NoError(t, calRepo.InsertBatch(ctx, []*models.Calificacion{{
		ID:         uuid.New(),
		Alumno:     "María",
		Comentario: "Excelente",
		Puntaje:    5,
		CursoID:    curso.ID,
	}}))

	// A rating pointing at a course that does not exist violates the FK
	err := calRepo.InsertBatch(ctx, []*models.Calificacion{{
		ID:      uuid.New(),
		Alumno:  "Diego",
		Puntaje: 1,
		CursoID: uuid.New(),
	}})
	require.Error(t, err)

	n, err := calRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestIdentityRepository_RolesUsersAndClaims(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, tdb.DB)
	ctx := context.Background()

	repo := NewIdentityRepository(tdb.DB)

	any, err := repo.AnyUsers(ctx)
	require.NoError(t, err)
	assert.False(t, any)

	role := &models.Role{ID: uuid.New(), Name: models.RoleAdmin}
	require.NoError(t, repo.CreateRole(ctx, role))

	exists, err := repo.RoleExists(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.RoleExists(ctx, models.RoleClient)
	require.NoError(t, err)
	assert.False(t, exists)

	user := &models.User{
		ID:             uuid.New(),
		NombreCompleto: "Andres Diaz",
		UserName:       "andresadmin",
		Email:          "andresadmin@example.com",
		PasswordHash:   "$2a$10$fakehashfortest",
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	any, err = repo.AnyUsers(ctx)
	require.NoError(t, err)
	assert.True(t, any)

	require.NoError(t, repo.AssignRole(ctx, user.ID, role.ID))
	require.NoError(t, repo.AddRoleClaim(ctx, &models.RoleClaim{
		RoleID:     role.ID,
		ClaimType:  models.ClaimTypePolicies,
		ClaimValue: models.PolicyCursoRead,
	}))

	var claims int
	require.NoError(t, tdb.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM role_claims WHERE role_id = $1`, role.ID).Scan(&claims))
	assert.Equal(t, 1, claims)
}
