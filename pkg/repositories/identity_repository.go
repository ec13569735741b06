package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/masternet-io/masternet-engine/pkg/database"
	"github.com/masternet-io/masternet-engine/pkg/models"
)

// IdentityRepository defines data access for roles, users and role claims.
type IdentityRepository interface {
	AnyUsers(ctx context.Context) (bool, error)
	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, role *models.Role) error
	CreateUser(ctx context.Context, user *models.User) error
	AssignRole(ctx context.Context, userID, roleID uuid.UUID) error
	AddRoleClaim(ctx context.Context, claim *models.RoleClaim) error
}

type identityRepository struct {
	db *database.DB
}

// NewIdentityRepository creates a new identity repository.
func NewIdentityRepository(db *database.DB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) AnyUsers(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for users: %w", err)
	}
	return exists, nil
}

func (r *identityRepository) RoleExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for role %s: %w", name, err)
	}
	return exists, nil
}

func (r *identityRepository) CreateRole(ctx context.Context, role *models.Role) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO roles (id, name)
		VALUES ($1, $2)`,
		role.ID, role.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create role %s: %w", role.Name, err)
	}
	return nil
}

func (r *identityRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, nombre_completo, user_name, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.NombreCompleto, user.UserName, user.Email, user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.UserName, err)
	}
	return nil
}

func (r *identityRepository) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)`,
		userID, roleID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign role %s to user %s: %w", roleID, userID, err)
	}
	return nil
}

func (r *identityRepository) AddRoleClaim(ctx context.Context, claim *models.RoleClaim) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO role_claims (role_id, claim_type, claim_value)
		VALUES ($1, $2, $3)`,
		claim.RoleID, claim.ClaimType, claim.ClaimValue,
	)
	if err != nil {
		return fmt.Errorf("failed to add claim %s to role %s: %w", claim.ClaimValue, claim.RoleID, err)
	}
	return nil
}
