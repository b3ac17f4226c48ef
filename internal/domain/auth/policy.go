package auth

import "strings"

// AdminPolicy designates the single principal allowed to read every tenant's data.
// An empty PrincipalID disables the admin surface entirely.
type AdminPolicy struct {
	PrincipalID string
}

func NewAdminPolicy(principalID string) AdminPolicy {
	return AdminPolicy{PrincipalID: strings.TrimSpace(principalID)}
}

func (p AdminPolicy) Configured() bool {
	return p.PrincipalID != ""
}

func (p AdminPolicy) IsAdmin(c Context) bool {
	return p.Configured() && c.IsAuthenticated() && c.PrincipalID == p.PrincipalID
}
