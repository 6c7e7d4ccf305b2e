package auth

import "testing"

// TestParseRole verifies role parsing behavior.
func TestParseRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"ADMIN", RoleAdmin, false},
		{"admin", RoleAdmin, false},
		{" creator ", RoleCreator, false},
		{"Kitchen", RoleKitchen, false},
		{"SERVICE", RoleService, false},
		{"USER", RoleUser, false},
		{"", "", true},
		{"ROOT", "", true},
		{"superadmin", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRole(%q) should fail, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestRolePermissions verifies the permission table.
func TestRolePermissions(t *testing.T) {
	t.Parallel()

	allPerms := []Permission{
		PermDashboard, PermEvents, PermAddEvent, PermCategories,
		PermArtists, PermCoupons, PermQRScanner, PermReports,
		PermUsers, PermTickets, PermSettings, PermService, PermKitchen,
	}

	// CREATOR and ADMIN hold everything.
	for _, role := range []Role{RoleCreator, RoleAdmin} {
		for _, p := range allPerms {
			if !role.HasPermission(p) {
				t.Fatalf("%s should have %s", role, p)
			}
		}
	}

	// USER holds nothing.
	for _, p := range allPerms {
		if RoleUser.HasPermission(p) {
			t.Fatalf("USER should not have %s", p)
		}
	}

	// KITCHEN: dashboard, tickets, kitchen only.
	kitchenGrants := map[Permission]bool{PermDashboard: true, PermTickets: true, PermKitchen: true}
	for _, p := range allPerms {
		if got := RoleKitchen.HasPermission(p); got != kitchenGrants[p] {
			t.Fatalf("KITCHEN %s = %v, want %v", p, got, kitchenGrants[p])
		}
	}

	// SERVICE: qr scanner, tickets, service only.
	serviceGrants := map[Permission]bool{PermQRScanner: true, PermTickets: true, PermService: true}
	for _, p := range allPerms {
		if got := RoleService.HasPermission(p); got != serviceGrants[p] {
			t.Fatalf("SERVICE %s = %v, want %v", p, got, serviceGrants[p])
		}
	}

	// Every role names every permission in the table.
	for role, perms := range rolePermissions {
		if len(perms) != len(allPerms) {
			t.Fatalf("%s table has %d entries, want %d", role, len(perms), len(allPerms))
		}
	}
}

// TestCanAccessConsole verifies the console gate.
func TestCanAccessConsole(t *testing.T) {
	t.Parallel()

	for _, role := range []Role{RoleCreator, RoleAdmin, RoleKitchen, RoleService} {
		if !role.CanAccessConsole() {
			t.Fatalf("%s should access console", role)
		}
	}
	if RoleUser.CanAccessConsole() {
		t.Fatalf("USER should not access console")
	}
}
