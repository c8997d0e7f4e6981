package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. The stored and wire form is the
// canonical casing below; parsing is case-insensitive.
type Role string

const (
	RoleStudent       Role = "Student"
	RoleMentor        Role = "Mentor"
	RoleRecruiter     Role = "Recruiter"
	RolePlacementCell Role = "PlacementCell"
)

// ParseRole maps an input string to a canonical Role. "placement cell" and
// "placementcell" are both accepted for RolePlacementCell.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, nil
	case "mentor":
		return RoleMentor, nil
	case "recruiter":
		return RoleRecruiter, nil
	case "placementcell", "placement cell":
		return RolePlacementCell, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleRecruiter, RolePlacementCell:
		return true
	}
	return false
}
