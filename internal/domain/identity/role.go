package identity

import (
	"regexp"
	"sort"
	"strings"

	"github.com/autenticco/backend/internal/domain/shared"
)

var roleCodePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{1,49}$`)

// Role groups permissions. System roles cannot be deleted or renamed.
type Role struct {
	shared.BaseEntity
	Code        string
	Name        string
	Description string
	IsSystem    bool
	Permissions []Permission
}

// NewRole creates a custom role with the given permission codes
func NewRole(code, name, description string, permissionCodes []string) (*Role, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !roleCodePattern.MatchString(code) {
		return nil, shared.NewDomainError("INVALID_ROLE_CODE", "Role code must be 2-50 lowercase letters, digits or underscores")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ROLE_NAME", "Role name is required")
	}

	r := &Role{
		BaseEntity:  shared.NewBaseEntity(),
		Code:        code,
		Name:        name,
		Description: description,
	}
	if err := r.SetPermissions(permissionCodes); err != nil {
		return nil, err
	}
	return r, nil
}

// SetPermissions replaces the role's grants. Codes are de-duplicated and
// must be known.
func (r *Role) SetPermissions(codes []string) error {
	seen := make(map[string]struct{}, len(codes))
	perms := make([]Permission, 0, len(codes))
	for _, c := range codes {
		p, err := ParsePermission(c)
		if err != nil {
			return err
		}
		if !IsKnownPermission(p.Code) {
			return shared.NewDomainError("UNKNOWN_PERMISSION", "Unknown permission: "+p.Code)
		}
		if _, dup := seen[p.Code]; dup {
			continue
		}
		seen[p.Code] = struct{}{}
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i].Code < perms[j].Code })
	r.Permissions = perms
	r.Touch()
	return nil
}

// Update changes name, description and grants
func (r *Role) Update(name, description string, permissionCodes []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name is required")
	}
	if r.IsSystem && name != r.Name {
		return shared.NewDomainError("SYSTEM_ROLE", "System roles cannot be renamed")
	}
	r.Name = name
	r.Description = description
	return r.SetPermissions(permissionCodes)
}

// PermissionCodes lists the role's codes
func (r *Role) PermissionCodes() []string {
	codes := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		codes[i] = p.Code
	}
	return codes
}

// HasPermission reports whether the role grants code
func (r *Role) HasPermission(code string) bool {
	for _, p := range r.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}
