package identity

import (
	"context"
	"time"

	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/autenticco/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles back-office accounts
type UserService struct {
	userRepo   identity.UserRepository
	roleRepo   identity.RoleRepository
	blacklist  auth.TokenBlacklist
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewUserService creates a new user service. Deactivating a user revokes
// their tokens for sessionTTL, which should cover the refresh token lifetime.
func NewUserService(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	blacklist auth.TokenBlacklist,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		blacklist:  blacklist,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out, nil
}

// Create registers a user with an existing role
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "Email is already registered")
	}
	if _, err := s.roleRepo.FindByID(ctx, req.RoleID); err != nil {
		return nil, roleNotFound(err)
	}

	user, err := identity.NewUser(req.Email, req.Name, req.Password, req.RoleID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User created", zap.String("user_id", user.ID.String()), zap.String("role_id", user.RoleID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

// SetRole moves a user to another role. Existing tokens keep the old grants
// until they are refreshed.
func (s *UserService) SetRole(ctx context.Context, id uuid.UUID, req SetRoleRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.roleRepo.FindByID(ctx, req.RoleID); err != nil {
		return nil, roleNotFound(err)
	}
	if err := user.AssignRole(req.RoleID); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Activate re-enables a user
func (s *UserService) Activate(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Activate()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Deactivate blocks a user and revokes their sessions. Users cannot
// deactivate themselves.
func (s *UserService) Deactivate(ctx context.Context, actorID, id uuid.UUID) (*UserResponse, error) {
	if actorID == id {
		return nil, shared.NewDomainError("CANNOT_DEACTIVATE_SELF", "You cannot deactivate your own account")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Deactivate()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if s.blacklist != nil {
		if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), s.sessionTTL); err != nil {
			s.logger.Error("Failed to revoke sessions of deactivated user", zap.String("user_id", user.ID.String()), zap.Error(err))
		}
	}
	s.logger.Info("User deactivated", zap.String("user_id", user.ID.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

func roleNotFound(err error) error {
	if de, ok := shared.AsDomainError(err); ok && de.Code == shared.ErrNotFound.Code {
		return shared.NewDomainError("INVALID_ROLE", "Role does not exist")
	}
	return err
}
