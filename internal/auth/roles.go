package auth

import (
	"fmt"
	"strings"
)

// Role is the closed set of operator roles the venue API hands out. Anything
// outside this set is rejected at parse time instead of being carried around
// as a permissionless ghost.
type Role string

const (
	RoleCreator Role = "CREATOR"
	RoleAdmin   Role = "ADMIN"
	RoleKitchen Role = "KITCHEN"
	RoleService Role = "SERVICE"
	RoleUser    Role = "USER"
)

// ParseRole normalizes and validates a role string. Unknown roles are an
// error, never a silent deny-all.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch role {
	case RoleCreator, RoleAdmin, RoleKitchen, RoleService, RoleUser:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Permission names a console surface an operator may use.
type Permission string

const (
	PermDashboard  Permission = "dashboard"
	PermEvents     Permission = "events"
	PermAddEvent   Permission = "addEvent"
	PermCategories Permission = "categories"
	PermArtists    Permission = "artists"
	PermCoupons    Permission = "coupons"
	PermQRScanner  Permission = "qrScanner"
	PermReports    Permission = "reports"
	PermUsers      Permission = "users"
	PermTickets    Permission = "tickets"
	PermSettings   Permission = "settings"
	PermService    Permission = "service"
	PermKitchen    Permission = "kitchen"
)

// rolePermissions grants per role. Every role names every permission; a
// missing pair cannot happen.
var rolePermissions = map[Role]map[Permission]bool{
	RoleCreator: {
		PermDashboard: true, PermEvents: true, PermAddEvent: true,
		PermCategories: true, PermArtists: true, PermCoupons: true,
		PermQRScanner: true, PermReports: true, PermUsers: true,
		PermTickets: true, PermSettings: true, PermService: true,
		PermKitchen: true,
	},
	RoleAdmin: {
		PermDashboard: true, PermEvents: true, PermAddEvent: true,
		PermCategories: true, PermArtists: true, PermCoupons: true,
		PermQRScanner: true, PermReports: true, PermUsers: true,
		PermTickets: true, PermSettings: true, PermService: true,
		PermKitchen: true,
	},
	RoleKitchen: {
		PermDashboard: true, PermEvents: false, PermAddEvent: false,
		PermCategories: false, PermArtists: false, PermCoupons: false,
		PermQRScanner: false, PermReports: false, PermUsers: false,
		PermTickets: true, PermSettings: false, PermService: false,
		PermKitchen: true,
	},
	RoleService: {
		PermDashboard: false, PermEvents: false, PermAddEvent: false,
		PermCategories: false, PermArtists: false, PermCoupons: false,
		PermQRScanner: true, PermReports: false, PermUsers: false,
		PermTickets: true, PermSettings: false, PermService: true,
		PermKitchen: false,
	},
	RoleUser: {
		PermDashboard: false, PermEvents: false, PermAddEvent: false,
		PermCategories: false, PermArtists: false, PermCoupons: false,
		PermQRScanner: false, PermReports: false, PermUsers: false,
		PermTickets: false, PermSettings: false, PermService: false,
		PermKitchen: false,
	},
}

// HasPermission reports whether the role grants the permission.
func (r Role) HasPermission(p Permission) bool {
	return rolePermissions[r][p]
}

// CanAccessConsole reports whether the role may enter the admin console at
// all. Plain USER accounts buy tickets; they do not operate the venue.
func (r Role) CanAccessConsole() bool {
	return r == RoleCreator || r == RoleAdmin || r == RoleKitchen || r == RoleService
}

// Label returns the display name shown in the console UI.
func (r Role) Label() string {
	switch r {
	case RoleCreator:
		return "Creador"
	case RoleAdmin:
		return "Administrador"
	case RoleKitchen:
		return "Cocina"
	case RoleService:
		return "Servicio"
	case RoleUser:
		return "Usuario"
	}
	return string(r)
}
