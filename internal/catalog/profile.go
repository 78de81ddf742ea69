package catalog

import (
	"context"

	"github.com/shoplight/shoplight/internal/domain"
)

// CallerUserProfile returns the caller's profile, or nil before setup
func (c *Catalog) CallerUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	return query(ctx, c, KeyCurrentUserProfile, c.backend.GetCallerUserProfile)
}

// SaveCallerUserProfile stores the caller's profile. Caller-scoped:
// only the current-profile query is invalidated.
func (c *Catalog) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	return mutateVoid(ctx, c, MutSaveProfile, func(ctx context.Context) error {
		return c.backend.SaveCallerUserProfile(ctx, profile)
	})
}

// UserProfile returns another principal's profile (admin view)
func (c *Catalog) UserProfile(ctx context.Context, principal string) (*domain.UserProfile, error) {
	return query(ctx, c, paramKey(KeyUserProfile, principal), func(ctx context.Context) (*domain.UserProfile, error) {
		return c.backend.GetUserProfile(ctx, principal)
	})
}

// CallerUserRole returns the caller's backend-assigned role
func (c *Catalog) CallerUserRole(ctx context.Context) (domain.UserRole, error) {
	return query(ctx, c, KeyCallerRole, c.backend.GetCallerUserRole)
}

// AssignUserRole grants a role to another principal (admin only; the
// backend enforces authorization)
func (c *Catalog) AssignUserRole(ctx context.Context, principal string, role domain.UserRole) error {
	return mutateVoid(ctx, c, MutAssignRole, func(ctx context.Context) error {
		return c.backend.AssignUserRole(ctx, principal, role)
	})
}

// IsCallerAdmin reports whether the caller is an admin. A not-ready
// handle yields the zero value false with no error; callers that need
// a resolved answer (the visitor tracker) must consult AdminStatus.
func (c *Catalog) IsCallerAdmin(ctx context.Context) (bool, error) {
	return query(ctx, c, KeyIsAdmin, c.backend.IsCallerAdmin)
}

// AdminStatus resolves the admin check into a three-way answer: an
// indeterminate handle or a failed check must not be mistaken for a
// confirmed non-admin.
func (c *Catalog) AdminStatus(ctx context.Context) domain.AdminStatus {
	if c.State() != domain.Ready {
		return domain.AdminUnknown
	}
	isAdmin, err := c.IsCallerAdmin(ctx)
	if err != nil {
		return domain.AdminUnknown
	}
	if isAdmin {
		return domain.AdminYes
	}
	return domain.AdminNo
}
