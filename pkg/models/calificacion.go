package models

import "github.com/google/uuid"

// Calificacion is a student rating of a course. A rating cannot outlive its
// course: curso_id is a required foreign key with cascade delete, and the
// seeder never inserts a rating whose course is unknown.
type Calificacion struct {
	ID         uuid.UUID `json:"id"`
	Alumno     string    `json:"alumno"`
	Comentario string    `json:"comentario"`
	Puntaje    int       `json:"puntaje"`
	CursoID    uuid.UUID `json:"curso_id"`
}
