package models

import "github.com/google/uuid"

// Role names created by the identity bootstrap.
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// ClaimTypePolicies is the claim type under which policy names are attached to roles.
const ClaimTypePolicies = "POLICIES"

// Policy claim values consumed by authorization checks outside this process.
const (
	PolicyCursoRead        = "CURSO_READ"
	PolicyCursoUpdate      = "CURSO_UPDATE"
	PolicyCursoWrite       = "CURSO_WRITE"
	PolicyCursoDelete      = "CURSO_DELETE"
	PolicyInstructorRead   = "INSTRUCTOR_READ"
	PolicyInstructorUpdate = "INSTRUCTOR_UPDATE"
	PolicyComentarioRead   = "COMENTARIO_READ"
	PolicyComentarioDelete = "COMENTARIO_DELETE"
	PolicyComentarioCreate = "COMENTARIO_CREATE"
)

// AdminPolicies is the full claim set attached to the administrative role.
var AdminPolicies = []string{
	PolicyCursoRead,
	PolicyCursoUpdate,
	PolicyCursoWrite,
	PolicyCursoDelete,
	PolicyInstructorRead,
	PolicyInstructorUpdate,
	PolicyComentarioRead,
	PolicyComentarioDelete,
	PolicyComentarioCreate,
}

// ClientPolicies is the read-mostly claim set attached to the client role.
var ClientPolicies = []string{
	PolicyComentarioRead,
	PolicyInstructorRead,
	PolicyCursoRead,
	PolicyComentarioCreate,
}

// Role is an authorization role with a stable name.
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RoleClaim is a string-valued policy claim attached to a role.
type RoleClaim struct {
	RoleID     uuid.UUID `json:"role_id"`
	ClaimType  string    `json:"claim_type"`
	ClaimValue string    `json:"claim_value"`
}

// User is an application account created by the identity bootstrap.
type User struct {
	ID             uuid.UUID `json:"id"`
	NombreCompleto string    `json:"nombre_completo"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
}
