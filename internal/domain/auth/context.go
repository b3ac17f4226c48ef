// Package auth holds the caller identity handed to use cases.
//
// The identity provider and token verification live at the HTTP boundary; use
// cases only see Context and AdminPolicy values.
package auth

import (
	"context"
	"strings"
)

// Context is the authenticated caller of an operation.
//
// OrgID is the caller's active organization and is empty when none is selected.
type Context struct {
	PrincipalID string
	OrgID       string
}

func (c Context) IsAuthenticated() bool {
	return strings.TrimSpace(c.PrincipalID) != ""
}

func (c Context) HasOrg() bool {
	return strings.TrimSpace(c.OrgID) != ""
}

// CanAccessOrg reports whether the caller's active organization is orgID.
// Multi-org membership is resolved by the identity provider when it issues the
// token, so the active organization is the only one honored here.
func (c Context) CanAccessOrg(orgID string) bool {
	return c.IsAuthenticated() && c.HasOrg() && c.OrgID == orgID
}

type ctxKey struct{}

func WithContext(ctx context.Context, ac Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, ac)
}

// FromContext returns the caller stored by the auth middleware, or an
// unauthenticated zero Context.
func FromContext(ctx context.Context) Context {
	ac, _ := ctx.Value(ctxKey{}).(Context)
	return ac
}
