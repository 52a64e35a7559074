package identity

import (
	"time"

	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// LoginRequest is the login form
// @Description Login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@autenticco.com.br"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// RefreshRequest carries the refresh token
// @Description Refresh token exchange
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// LogoutRequest optionally carries the refresh token so it is revoked too
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse is returned by login and refresh
type LoginResponse struct {
	Token auth.TokenPair      `json:"token"`
	User  CurrentUserResponse `json:"user"`
}

// CurrentUserResponse is the authenticated user with the role's grants
type CurrentUserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	RoleID      uuid.UUID  `json:"role_id"`
	RoleCode    string     `json:"role"`
	RoleName    string     `json:"role_name"`
	Permissions []string   `json:"permissions"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func toCurrentUser(u *identity.User, r *identity.Role) CurrentUserResponse {
	return CurrentUserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		RoleID:      r.ID,
		RoleCode:    r.Code,
		RoleName:    r.Name,
		Permissions: r.PermissionCodes(),
		LastLoginAt: u.LastLoginAt,
	}
}

// RoleRequest creates or updates a role. Code is ignored on update.
type RoleRequest struct {
	Code        string   `json:"code" binding:"omitempty,max=50"`
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=500"`
	Permissions []string `json:"permissions"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsSystem    bool      `json:"is_system"`
	Permissions []string  `json:"permissions"`
	UserCount   int64     `json:"user_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToRoleResponse converts a domain Role
func ToRoleResponse(r *identity.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
		Permissions: r.PermissionCodes(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// CreateUserRequest registers a back-office user
type CreateUserRequest struct {
	Email    string    `json:"email" binding:"required,email"`
	Name     string    `json:"name" binding:"required,max=120"`
	Password string    `json:"password" binding:"required,min=8,max=72"`
	RoleID   uuid.UUID `json:"role_id" binding:"required"`
}

// SetRoleRequest moves a user to another role
type SetRoleRequest struct {
	RoleID uuid.UUID `json:"role_id" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	RoleID      uuid.UUID  `json:"role_id"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToUserResponse converts a domain User
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		RoleID:      u.RoleID,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
