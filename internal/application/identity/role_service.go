package identity

import (
	"context"
	"errors"

	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoleService handles role management
type RoleService struct {
	roleRepo identity.RoleRepository
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo identity.RoleRepository, userRepo identity.UserRepository, logger *zap.Logger) *RoleService {
	return &RoleService{roleRepo: roleRepo, userRepo: userRepo, logger: logger}
}

// List returns every role with its user count
func (s *RoleService) List(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.roleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RoleResponse, len(roles))
	for i := range roles {
		out[i] = ToRoleResponse(&roles[i])
		count, err := s.userRepo.CountByRole(ctx, roles[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].UserCount = count
	}
	return out, nil
}

// Permissions lists every grant that can be assigned to a role
func (s *RoleService) Permissions() []identity.Permission {
	return identity.AllPermissions()
}

// Create adds a custom role
func (s *RoleService) Create(ctx context.Context, req RoleRequest) (*RoleResponse, error) {
	role, err := identity.NewRole(req.Code, req.Name, req.Description, req.Permissions)
	if err != nil {
		return nil, err
	}

	_, err = s.roleRepo.FindByCode(ctx, role.Code)
	switch {
	case err == nil:
		return nil, shared.NewDomainError("ROLE_CODE_EXISTS", "Role code already exists")
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}
	s.logger.Info("Role created", zap.String("role", role.Code), zap.Strings("permissions", role.PermissionCodes()))
	resp := ToRoleResponse(role)
	return &resp, nil
}

// Update changes a role's name, description and grants
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, req RoleRequest) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := role.Update(req.Name, req.Description, req.Permissions); err != nil {
		return nil, err
	}
	if role.Code == AdminRoleCode && !hasAllPermissions(role) {
		return nil, shared.NewDomainError("SYSTEM_ROLE", "The administrator role keeps every permission")
	}
	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}
	s.logger.Info("Role updated", zap.String("role", role.Code), zap.Strings("permissions", role.PermissionCodes()))
	resp := ToRoleResponse(role)
	return &resp, nil
}

// Delete removes a custom role that no user holds
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return shared.NewDomainError("SYSTEM_ROLE", "System roles cannot be deleted")
	}
	count, err := s.userRepo.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("ROLE_IN_USE", "Role is assigned to users")
	}
	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Role deleted", zap.String("role", role.Code))
	return nil
}

func hasAllPermissions(r *identity.Role) bool {
	for _, p := range identity.AllPermissions() {
		if !r.HasPermission(p.Code) {
			return false
		}
	}
	return true
}
