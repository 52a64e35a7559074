package identity

import (
	"regexp"
	"sort"
	"strings"

	"github.com/autenticco/backend/internal/domain/shared"
)

// Resources that can be guarded by a permission
const (
	ResourceCars         = "cars"
	ResourceFinance      = "finance"
	ResourceReports      = "reports"
	ResourceLeads        = "leads"
	ResourceTestimonials = "testimonials"
	ResourcePlatforms    = "platforms"
	ResourceUsers        = "users"
	ResourceRoles        = "roles"
)

// Actions a permission can grant
const (
	ActionRead  = "read"
	ActionWrite = "write"
)

var permissionPartPattern = regexp.MustCompile(`^[a-z][a-z_]*$`)

// Permission is a "resource:action" grant
type Permission struct {
	Code     string `json:"code"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// NewPermission validates resource and action
func NewPermission(resource, action string) (Permission, error) {
	resource = strings.ToLower(strings.TrimSpace(resource))
	action = strings.ToLower(strings.TrimSpace(action))
	if !permissionPartPattern.MatchString(resource) || !permissionPartPattern.MatchString(action) {
		return Permission{}, shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission must be in format 'resource:action'")
	}
	return Permission{Code: resource + ":" + action, Resource: resource, Action: action}, nil
}

// ParsePermission parses a "resource:action" code
func ParsePermission(code string) (Permission, error) {
	resource, action, ok := strings.Cut(code, ":")
	if !ok {
		return Permission{}, shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission must be in format 'resource:action'")
	}
	return NewPermission(resource, action)
}

// AllPermissions is every grant the back office knows about, sorted by code
func AllPermissions() []Permission {
	resources := []string{
		ResourceCars, ResourceFinance, ResourceReports, ResourceLeads,
		ResourceTestimonials, ResourcePlatforms, ResourceUsers, ResourceRoles,
	}
	out := make([]Permission, 0, len(resources)*2)
	for _, r := range resources {
		for _, a := range []string{ActionRead, ActionWrite} {
			p, _ := NewPermission(r, a)
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// IsKnownPermission reports whether code is in AllPermissions
func IsKnownPermission(code string) bool {
	for _, p := range AllPermissions() {
		if p.Code == code {
			return true
		}
	}
	return false
}
