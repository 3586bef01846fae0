package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
)

func authed(role user.Role) session.State {
	return session.State{IsAuthenticated: true, User: &user.User{ID: "1", Role: role}}
}

func TestResolve(t *testing.T) {
	anon := session.State{}

	tests := []struct {
		name     string
		path     string
		state    session.State
		loading  bool
		want     Outcome
		location string
	}{
		{name: "root anonymous", path: "/", state: anon, want: Redirect, location: PathLogin},
		{name: "root authenticated", path: "/", state: authed(user.RoleParent), want: Redirect, location: PathDashboard},
		{name: "root while loading", path: "/", state: anon, loading: true, want: Loading},
		{name: "login anonymous", path: "/login", state: anon, want: Render},
		{name: "login authenticated", path: "/login", state: authed(user.RoleAdmin), want: Redirect, location: PathDashboard},
		{name: "protected anonymous", path: "/students", state: anon, want: Redirect, location: PathLogin},
		{name: "protected while loading", path: "/dashboard", state: anon, loading: true, want: Loading},
		{name: "protected allowed", path: "/students", state: authed(user.RoleTeacher), want: Render},
		{name: "protected trailing slash", path: "/students/", state: authed(user.RoleTeacher), want: Render},
		{name: "protected refused role", path: "/teachers", state: authed(user.RoleTeacher), want: Forbidden},
		{name: "settings for parent", path: "/settings", state: authed(user.RoleParent), want: Forbidden},
		{name: "fees for parent", path: "/fees", state: authed(user.RoleParent), want: Render},
		{name: "unknown anonymous", path: "/nope", state: anon, want: NotFound},
		{name: "unknown authenticated", path: "/nope", state: authed(user.RoleAdmin), want: NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.path, tt.state, tt.loading)
			assert.Equal(t, tt.want, d.Outcome)
			assert.Equal(t, tt.location, d.Location)
		})
	}
}

func TestNavItems(t *testing.T) {
	titles := func(role user.Role) []string {
		var res []string
		for _, r := range NavItems(role) {
			res = append(res, r.Title)
		}
		return res
	}

	assert.Equal(t, []string{
		"Dashboard", "Students", "Teachers", "Classes", "Subjects", "Attendance",
		"Timetable", "Library", "Fees", "Profile", "Settings",
	}, titles(user.RoleAdmin))
	assert.Equal(t, []string{
		"Dashboard", "Students", "Classes", "Subjects", "Attendance", "Timetable", "Library", "Profile",
	}, titles(user.RoleTeacher))
	assert.Equal(t, []string{
		"Dashboard", "Subjects", "Attendance", "Timetable", "Library", "Profile",
	}, titles(user.RoleStudent))
	assert.Equal(t, []string{
		"Dashboard", "Attendance", "Timetable", "Fees", "Profile",
	}, titles(user.RoleParent))
}
