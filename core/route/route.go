package route

import (
	"strings"

	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
)

const (
	PathRoot       = "/"
	PathLogin      = "/login"
	PathDashboard  = "/dashboard"
	PathProfile    = "/profile"
	PathAttendance = "/attendance"
	PathStudents   = "/students"
	PathTeachers   = "/teachers"
	PathClasses    = "/classes"
	PathSubjects   = "/subjects"
	PathTimetable  = "/timetable"
	PathLibrary    = "/library"
	PathFees       = "/fees"
	PathSettings   = "/settings"
)

type Route struct {
	Path      string
	Title     string
	Protected bool
	// Roles allowed to see the screen; empty means every role.
	Roles []user.Role
	// InNav places the route in the sidebar.
	InNav bool
}

// Allows reports whether role may see the route.
func (r Route) Allows(role user.Role) bool {
	return len(r.Roles) == 0 || role.In(r.Roles...)
}

var (
	staff         = []user.Role{user.RoleAdmin, user.RoleTeacher}
	adminOnly     = []user.Role{user.RoleAdmin}
	libraryRoles  = []user.Role{user.RoleAdmin, user.RoleTeacher, user.RoleStudent}
	financeRoles  = []user.Role{user.RoleAdmin, user.RoleParent}
	subjectsRoles = []user.Role{user.RoleAdmin, user.RoleTeacher, user.RoleStudent}

	// Routes is in sidebar order.
	Routes = []Route{
		{Path: PathDashboard, Title: "Dashboard", Protected: true, InNav: true},
		{Path: PathStudents, Title: "Students", Protected: true, InNav: true, Roles: staff},
		{Path: PathTeachers, Title: "Teachers", Protected: true, InNav: true, Roles: adminOnly},
		{Path: PathClasses, Title: "Classes", Protected: true, InNav: true, Roles: staff},
		{Path: PathSubjects, Title: "Subjects", Protected: true, InNav: true, Roles: subjectsRoles},
		{Path: PathAttendance, Title: "Attendance", Protected: true, InNav: true},
		{Path: PathTimetable, Title: "Timetable", Protected: true, InNav: true},
		{Path: PathLibrary, Title: "Library", Protected: true, InNav: true, Roles: libraryRoles},
		{Path: PathFees, Title: "Fees", Protected: true, InNav: true, Roles: financeRoles},
		{Path: PathProfile, Title: "Profile", Protected: true, InNav: true},
		{Path: PathSettings, Title: "Settings", Protected: true, InNav: true, Roles: adminOnly},
		{Path: PathLogin, Title: "Login"},
		{Path: PathRoot, Title: "Home"},
	}
)

// Lookup finds the route of path, ignoring a trailing slash.
func Lookup(path string) (Route, bool) {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// NavItems returns the sidebar entries visible to role.
func NavItems(role user.Role) []Route {
	items := make([]Route, 0, len(Routes))
	for _, r := range Routes {
		if r.InNav && r.Allows(role) {
			items = append(items, r)
		}
	}
	return items
}

type Outcome int

const (
	Render Outcome = iota
	Redirect
	Loading
	NotFound
	Forbidden
)

// Decision is what the guard does with a navigation.
type Decision struct {
	Outcome  Outcome
	Location string // set for Redirect
	Route    Route
}

// Resolve applies the guard to a navigation to path.
//   - `/` redirects to the dashboard when authenticated, to the login screen otherwise.
//   - `/login` redirects authenticated users to the dashboard.
//   - protected routes show the loading state until restore completes, then redirect
//     unauthenticated users to the login screen and refuse roles outside the route's allow-list.
//   - any other path is not found, regardless of authentication.
func Resolve(path string, st session.State, loading bool) Decision {
	r, ok := Lookup(path)
	if !ok {
		return Decision{Outcome: NotFound}
	}

	switch {
	case r.Path == PathRoot:
		if loading {
			return Decision{Outcome: Loading, Route: r}
		}
		if st.IsAuthenticated {
			return Decision{Outcome: Redirect, Location: PathDashboard, Route: r}
		}
		return Decision{Outcome: Redirect, Location: PathLogin, Route: r}
	case r.Path == PathLogin:
		if !loading && st.IsAuthenticated {
			return Decision{Outcome: Redirect, Location: PathDashboard, Route: r}
		}
		return Decision{Outcome: Render, Route: r}
	case r.Protected:
		if loading {
			return Decision{Outcome: Loading, Route: r}
		}
		if !st.IsAuthenticated || st.User == nil {
			return Decision{Outcome: Redirect, Location: PathLogin, Route: r}
		}
		if !r.Allows(st.User.Role) {
			return Decision{Outcome: Forbidden, Route: r}
		}
	}
	return Decision{Outcome: Render, Route: r}
}
