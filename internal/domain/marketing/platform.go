package marketing

import (
	"strings"

	"github.com/autenticco/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PlatformType classifies where a car is advertised
type PlatformType string

const (
	// PlatformMarketplace is a paid listing site; its spend counts as ad cost
	PlatformMarketplace PlatformType = "marketplace"
	// PlatformSocial is an organic social network post
	PlatformSocial PlatformType = "social"
	// PlatformOther covers anything else, including unrecognised values
	PlatformOther PlatformType = "other"
)

// ParsePlatformType normalises stored values. Unknown values map to other.
func ParsePlatformType(s string) PlatformType {
	switch PlatformType(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformMarketplace:
		return PlatformMarketplace
	case PlatformSocial:
		return PlatformSocial
	default:
		return PlatformOther
	}
}

// IsMarketplace reports whether spend on this platform type is ad cost
func (t PlatformType) IsMarketplace() bool {
	return t == PlatformMarketplace
}

// Platform is an advertising channel (OLX, Webmotors, Instagram...)
type Platform struct {
	shared.BaseEntity
	Name     string
	Type     PlatformType
	IsActive bool
}

// NewPlatform creates an active platform
func NewPlatform(name string, platformType PlatformType) (*Platform, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PLATFORM", "Platform name is required")
	}
	return &Platform{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Type:       ParsePlatformType(string(platformType)),
		IsActive:   true,
	}, nil
}

// Rename changes name and type
func (p *Platform) Rename(name string, platformType PlatformType) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PLATFORM", "Platform name is required")
	}
	p.Name = name
	p.Type = ParsePlatformType(string(platformType))
	p.Touch()
	return nil
}

// PlatformIndex resolves platform types by id
type PlatformIndex map[uuid.UUID]PlatformType

// NewPlatformIndex indexes platforms by id
func NewPlatformIndex(platforms []Platform) PlatformIndex {
	idx := make(PlatformIndex, len(platforms))
	for _, p := range platforms {
		idx[p.ID] = p.Type
	}
	return idx
}

// TypeOf returns the platform type, or other when the id is unknown or nil
func (idx PlatformIndex) TypeOf(id *uuid.UUID) PlatformType {
	if id == nil {
		return PlatformOther
	}
	if t, ok := idx[*id]; ok {
		return t
	}
	return PlatformOther
}
