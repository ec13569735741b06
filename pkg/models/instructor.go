package models

import "github.com/google/uuid"

// Instructor teaches zero or more courses.
type Instructor struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellidos string    `json:"apellidos"`
	Grado     string    `json:"grado"`
}
