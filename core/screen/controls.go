package screen

import "github.com/trezcool/scholarsync/core/user"

// Control is an action a screen may offer.
type Control string

const (
	AddStudent     Control = "students.add"
	AddTeacher     Control = "teachers.add"
	AddClass       Control = "classes.add"
	AddSubject     Control = "subjects.add"
	AddFee         Control = "fees.add"
	MarkFeePaid    Control = "fees.markPaid"
	PayFee         Control = "fees.pay"
	AddBook        Control = "library.add"
	BorrowBook     Control = "library.borrow"
	ReserveBook    Control = "library.reserve"
	TakeAttendance Control = "attendance.take"
	SaveSettings   Control = "settings.save"
)

var controlRoles = map[Control][]user.Role{
	AddStudent:     {user.RoleAdmin},
	AddTeacher:     {user.RoleAdmin},
	AddClass:       {user.RoleAdmin},
	AddSubject:     {user.RoleAdmin},
	AddFee:         {user.RoleAdmin},
	MarkFeePaid:    {user.RoleAdmin},
	PayFee:         {user.RoleParent},
	AddBook:        {user.RoleAdmin},
	BorrowBook:     {user.RoleAdmin, user.RoleTeacher, user.RoleStudent},
	ReserveBook:    {user.RoleAdmin, user.RoleTeacher, user.RoleStudent},
	TakeAttendance: {user.RoleAdmin, user.RoleTeacher},
	SaveSettings:   {user.RoleAdmin},
}

// Allowed reports whether role may use control. Unknown controls are refused.
func Allowed(role user.Role, control Control) bool {
	return role.In(controlRoles[control]...)
}

// Controls returns the allowed state of every control for role, keyed by control name.
func Controls(role user.Role) map[Control]bool {
	m := make(map[Control]bool, len(controlRoles))
	for c := range controlRoles {
		m[c] = Allowed(role, c)
	}
	return m
}
