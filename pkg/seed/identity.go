package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/masternet-io/masternet-engine/pkg/models"
	"github.com/masternet-io/masternet-engine/pkg/repositories"
)

// Fixed role identifiers carried over from the original deployment data so
// claims and assignments stay stable across environments.
var (
	roleAdminID  = uuid.MustParse("dbfda079-caf1-4dc1-8ee4-15a8e4246084")
	roleClientID = uuid.MustParse("681d0c02-5b4e-4d22-85b6-1a84aa4b3c39")
)

// bootstrapPassword is the initial password for seeded users. Operators are
// expected to rotate it after first login.
const bootstrapPassword = "Password123$"

// IdentityBootstrap seeds roles, a minimal set of users, and per-role policy
// claims. It is idempotent on "any user exists" and swallows per-step
// failures so one bad step never blocks the rest.
type IdentityBootstrap struct {
	repo   repositories.IdentityRepository
	logger *zap.Logger
}

// NewIdentityBootstrap creates the identity bootstrap.
func NewIdentityBootstrap(repo repositories.IdentityRepository, logger *zap.Logger) *IdentityBootstrap {
	return &IdentityBootstrap{
		repo:   repo,
		logger: logger.Named("identity-seed"),
	}
}

// Run performs the identity bootstrap. Only the initial "any users" guard can
// fail the run as a whole; every later step logs and continues.
func (b *IdentityBootstrap) Run(ctx context.Context) error {
	exists, err := b.repo.AnyUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if exists {
		b.logger.Info("Users already present, skipping identity bootstrap")
		return nil
	}

	b.ensureRole(ctx, &models.Role{ID: roleAdminID, Name: models.RoleAdmin})
	b.ensureRole(ctx, &models.Role{ID: roleClientID, Name: models.RoleClient})

	admin := b.createUser(ctx, "Andres Diaz", "andresadmin", "andresadmin@example.com")
	client := b.createUser(ctx, "Andres Diaz", "andresclient", "andresclient@example.com")

	if admin != nil {
		b.assignRole(ctx, admin, roleAdminID)
	}
	if client != nil {
		b.assignRole(ctx, client, roleClientID)
	}

	b.attachClaims(ctx, roleAdminID, models.AdminPolicies)
	b.attachClaims(ctx, roleClientID, models.ClientPolicies)

	b.logger.Info("Identity bootstrap completed")
	return nil
}

func (b *IdentityBootstrap) ensureRole(ctx context.Context, role *models.Role) {
	exists, err := b.repo.RoleExists(ctx, role.Name)
	if err != nil {
		b.logger.Warn("Failed to check role existence",
			zap.String("role", role.Name),
			zap.Error(err))
		return
	}
	if exists {
		return
	}
	if err := b.repo.CreateRole(ctx, role); err != nil {
		b.logger.Warn("Failed to create role",
			zap.String("role", role.Name),
			zap.Error(err))
	}
}

func (b *IdentityBootstrap) createUser(ctx context.Context, nombreCompleto, userName, email string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		b.logger.Warn("Failed to hash bootstrap password",
			zap.String("user", userName),
			zap.Error(err))
		return nil
	}

	user := &models.User{
		ID:             uuid.New(),
		NombreCompleto: nombreCompleto,
		UserName:       userName,
		Email:          email,
		PasswordHash:   string(hash),
	}
	if err := b.repo.CreateUser(ctx, user); err != nil {
		b.logger.Warn("Failed to create user",
			zap.String("user", userName),
			zap.Error(err))
		return nil
	}
	return user
}

func (b *IdentityBootstrap) assignRole(ctx context.Context, user *models.User, roleID uuid.UUID) {
	if err := b.repo.AssignRole(ctx, user.ID, roleID); err != nil {
		b.logger.Warn("Failed to assign role",
			zap.String("user", user.UserName),
			zap.String("role_id", roleID.String()),
			zap.Error(err))
	}
}

// attachClaims adds each policy claim individually; a failure on one claim
// never blocks the next.
func (b *IdentityBootstrap) attachClaims(ctx context.Context, roleID uuid.UUID, policies []string) {
	for _, policy := range policies {
		claim := &models.RoleClaim{
			RoleID:     roleID,
			ClaimType:  models.ClaimTypePolicies,
			ClaimValue: policy,
		}
		if err := b.repo.AddRoleClaim(ctx, claim); err != nil {
			b.logger.Warn("Failed to attach role claim",
				zap.String("role_id", roleID.String()),
				zap.String("policy", policy),
				zap.Error(err))
		}
	}
}
