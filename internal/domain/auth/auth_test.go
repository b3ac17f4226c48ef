package auth

import (
	"context"
	"testing"
)

func TestContext_CanAccessOrg(t *testing.T) {
	cases := []struct {
		name string
		ac   Context
		org  string
		want bool
	}{
		{name: "member", ac: Context{PrincipalID: "user_1", OrgID: "org-1"}, org: "org-1", want: true},
		{name: "other org", ac: Context{PrincipalID: "user_1", OrgID: "org-2"}, org: "org-1", want: false},
		{name: "no active org", ac: Context{PrincipalID: "user_1"}, org: "org-1", want: false},
		{name: "anonymous", ac: Context{OrgID: "org-1"}, org: "org-1", want: false},
		{name: "empty requested org", ac: Context{PrincipalID: "user_1"}, org: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ac.CanAccessOrg(tc.org); got != tc.want {
				t.Fatalf("CanAccessOrg(%q) = %v, want %v", tc.org, got, tc.want)
			}
		})
	}
}

func TestContext_RoundTrip(t *testing.T) {
	if FromContext(context.Background()).IsAuthenticated() {
		t.Fatalf("expected anonymous caller on empty context")
	}
	ctx := WithContext(context.Background(), Context{PrincipalID: "user_1", OrgID: "org-1"})
	got := FromContext(ctx)
	if got.PrincipalID != "user_1" || got.OrgID != "org-1" {
		t.Fatalf("unexpected caller: %+v", got)
	}
}

func TestAdminPolicy(t *testing.T) {
	p := NewAdminPolicy(" user_admin ")
	if !p.IsAdmin(Context{PrincipalID: "user_admin"}) {
		t.Fatalf("expected admin")
	}
	if p.IsAdmin(Context{PrincipalID: "user_1"}) {
		t.Fatalf("expected non-admin")
	}
	if NewAdminPolicy("").IsAdmin(Context{PrincipalID: ""}) {
		t.Fatalf("unconfigured policy must not grant admin")
	}
}
