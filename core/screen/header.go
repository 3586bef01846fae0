package screen

import (
	"time"

	"github.com/trezcool/scholarsync/core/route"
	"github.com/trezcool/scholarsync/core/user"
)

// Greeting returns the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Header is the chrome around every protected screen.
type Header struct {
	User      user.User     `json:"user"`
	RoleLabel string        `json:"roleLabel"`
	Greeting  string        `json:"greeting"`
	Nav       []route.Route `json:"nav"`
	Active    string        `json:"active"`
}

func NewHeader(usr user.User, active string, now time.Time) Header {
	return Header{
		User:      usr,
		RoleLabel: usr.Role.Label(),
		Greeting:  Greeting(now),
		Nav:       route.NavItems(usr.Role),
		Active:    active,
	}
}
