package models

import (
	"time"

	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for back-office users
type UserModel struct {
	BaseModel
	Email        string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(120);not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	RoleID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "app_users"
}

// ToDomain converts to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		RoleID:       m.RoleID,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
	}
}

// UserModelFromDomain creates a persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		RoleID:       u.RoleID,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// RoleModel is the persistence model for roles
type RoleModel struct {
	BaseModel
	Code        string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string                `gorm:"type:varchar(100);not null"`
	Description string                `gorm:"type:varchar(500)"`
	IsSystem    bool                  `gorm:"not null;default:false"`
	Permissions []RolePermissionModel `gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for GORM
func (RoleModel) TableName() string {
	return "app_roles"
}

// RolePermissionModel is one "resource:action" grant of a role
type RolePermissionModel struct {
	RoleID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code     string    `gorm:"type:varchar(60);primaryKey"`
	Resource string    `gorm:"type:varchar(30);not null"`
	Action   string    `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (RolePermissionModel) TableName() string {
	return "app_role_permissions"
}

// ToDomain converts to a domain Role
func (m *RoleModel) ToDomain() *identity.Role {
	perms := make([]identity.Permission, len(m.Permissions))
	for i, p := range m.Permissions {
		perms[i] = identity.Permission{Code: p.Code, Resource: p.Resource, Action: p.Action}
	}
	return &identity.Role{
		BaseEntity:  m.BaseModel.ToDomain(),
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		IsSystem:    m.IsSystem,
		Permissions: perms,
	}
}

// RoleModelFromDomain creates a persistence model from a domain Role,
// without its permissions
func RoleModelFromDomain(r *identity.Role) *RoleModel {
	m := &RoleModel{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// RolePermissionModelsFromDomain maps a role's grants to join rows
func RolePermissionModelsFromDomain(r *identity.Role) []RolePermissionModel {
	rows := make([]RolePermissionModel, len(r.Permissions))
	for i, p := range r.Permissions {
		rows[i] = RolePermissionModel{RoleID: r.ID, Code: p.Code, Resource: p.Resource, Action: p.Action}
	}
	return rows
}
