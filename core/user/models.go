package user

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type Role string

// Roles
const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

var (
	AllRoles = []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

	roleLabels = map[Role]string{
		RoleAdmin:   "Administrator",
		RoleTeacher: "Teacher",
		RoleStudent: "Student",
		RoleParent:  "Parent",
	}

	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ParseRole returns the Role named by s; unknown values fall back to RoleStudent.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleLabels[r]; ok {
		return r
	}
	return RoleStudent
}

func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label is the human readable name shown in the header.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return roleLabels[RoleStudent]
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	// LinkedID is the school record (teacher, student or parent) this account belongs to.
	LinkedID string `json:"linkedId,omitempty"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u User) IsStaff() bool { return u.Role.In(RoleAdmin, RoleTeacher) }

// AvatarURL builds the generated-initials avatar used for the fixed accounts.
func AvatarURL(name, background string) string {
	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=%s&color=fff",
		url.QueryEscape(name), background,
	)
}
