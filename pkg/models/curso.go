package models

import (
	"time"

	"github.com/google/uuid"
)

// Curso is a course in the catalog. Title, description and publication date
// are all optional in fixture data, so they are nullable here and in the store.
//
// Relations to instructors and price tiers are not held on the struct; they are
// expressed as flat join records (CursoInstructor, CursoPrecio) keyed by ID
// pairs, which keeps the model graph acyclic.
type Curso struct {
	ID               uuid.UUID  `json:"id"`
	Titulo           *string    `json:"titulo"`
	Descripcion      *string    `json:"descripcion"`
	FechaPublicacion *time.Time `json:"fecha_publicacion"`
}

// CursoInstructor links a course to an instructor (composite PK on both IDs).
type CursoInstructor struct {
	InstructorID uuid.UUID `json:"instructor_id"`
	CursoID      uuid.UUID `json:"curso_id"`
}

// CursoPrecio links a course to a price tier (composite PK on both IDs).
type CursoPrecio struct {
	PrecioID uuid.UUID `json:"precio_id"`
	CursoID  uuid.UUID `json:"curso_id"`
}
