package core

import "testing"

func TestHasRole(t *testing.T) {
	tests := []struct {
		name string
		user *User
		role string
		want bool
	}{
		{"nil user", nil, RoleAdmin, false},
		{"no roles", &User{}, RoleAdmin, false},
		{"has role", &User{Roles: []string{"ROLE_USER", RoleAdmin}}, RoleAdmin, true},
		{"other role only", &User{Roles: []string{"ROLE_USER"}}, RoleAdmin, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRole(tt.user, tt.role); got != tt.want {
				t.Errorf("HasRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	if IsAdmin(&User{Roles: []string{"ROLE_USER"}}) {
		t.Error("plain user should not be admin")
	}
	if !IsAdmin(&User{Roles: []string{RoleAdmin}}) {
		t.Error("admin role should be recognized")
	}
}

func TestCurrencySymbol(t *testing.T) {
	if got := CurrencySymbol("EUR"); got != "€" {
		t.Errorf("CurrencySymbol(EUR) = %q", got)
	}
	if got := CurrencySymbol("XXX"); got != "$" {
		t.Errorf("CurrencySymbol(XXX) = %q, want fallback $", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-03-15"); got != "Mar 15, 2026" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(""); got != "" {
		t.Errorf("FormatDate(empty) = %q", got)
	}
	if got := FormatDate("garbage"); got != "" {
		t.Errorf("FormatDate(garbage) = %q", got)
	}
}
