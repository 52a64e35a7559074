package identity

import (
	"context"
	"errors"

	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AdminRoleCode is the system role that holds every permission
const AdminRoleCode = "admin"

// BootstrapAdmin is the account seeded on first start
type BootstrapAdmin struct {
	Email    string
	Name     string
	Password string
}

// Bootstrap makes sure the admin system role exists with every permission
// and, when admin is given and nobody holds the role yet, creates that user.
// It is safe to run on every start.
func Bootstrap(ctx context.Context, roleRepo identity.RoleRepository, userRepo identity.UserRepository, admin *BootstrapAdmin, logger *zap.Logger) error {
	all := make([]string, 0)
	for _, p := range identity.AllPermissions() {
		all = append(all, p.Code)
	}

	role, err := roleRepo.FindByCode(ctx, AdminRoleCode)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		role, err = identity.NewRole(AdminRoleCode, "Administrador", "Acesso total ao painel", all)
		if err != nil {
			return err
		}
		role.IsSystem = true
		if err := roleRepo.Save(ctx, role); err != nil {
			return err
		}
		logger.Info("Admin role created")
	case err != nil:
		return err
	case !hasAllPermissions(role):
		if err := role.SetPermissions(all); err != nil {
			return err
		}
		if err := roleRepo.Save(ctx, role); err != nil {
			return err
		}
		logger.Info("Admin role permissions synced", zap.Int("permissions", len(all)))
	}

	if admin == nil {
		return nil
	}
	count, err := userRepo.CountByRole(ctx, role.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	exists, err := userRepo.ExistsByEmail(ctx, admin.Email)
	if err != nil {
		return err
	}
	if exists {
		logger.Warn("Bootstrap admin email belongs to a non-admin user, skipping", zap.String("email", admin.Email))
		return nil
	}

	user, err := identity.NewUser(admin.Email, admin.Name, admin.Password, role.ID)
	if err != nil {
		return err
	}
	if err := userRepo.Save(ctx, user); err != nil {
		return err
	}
	logger.Info("Bootstrap admin created", zap.String("user_id", user.ID.String()))
	return nil
}
