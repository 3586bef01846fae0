package screen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core/screen"
	"github.com/trezcool/scholarsync/core/user"
	testutil "github.com/trezcool/scholarsync/tests"
)

var (
	admin   = user.User{ID: "1", FirstName: "Admin", LastName: "User", Role: user.RoleAdmin}
	teacher = user.User{ID: "2", FirstName: "Teacher", LastName: "User", Role: user.RoleTeacher, LinkedID: "T1001"}
	student = user.User{ID: "3", FirstName: "Student", LastName: "User", Role: user.RoleStudent, LinkedID: "S1001"}
	parent  = user.User{ID: "4", FirstName: "Parent", LastName: "User", Role: user.RoleParent, LinkedID: "P1001"}
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		control screen.Control
		want    []user.Role
	}{
		{screen.AddStudent, []user.Role{user.RoleAdmin}},
		{screen.AddFee, []user.Role{user.RoleAdmin}},
		{screen.PayFee, []user.Role{user.RoleParent}},
		{screen.TakeAttendance, []user.Role{user.RoleAdmin, user.RoleTeacher}},
		{screen.BorrowBook, []user.Role{user.RoleAdmin, user.RoleTeacher, user.RoleStudent}},
		{screen.SaveSettings, []user.Role{user.RoleAdmin}},
		{"unknown", nil},
	}
	for _, tc := range tests {
		t.Run(string(tc.control), func(t *testing.T) {
			for _, role := range user.AllRoles {
				assert.Equal(t, role.In(tc.want...), screen.Allowed(role, tc.control), role)
			}
		})
	}

	assert.True(t, screen.Controls(user.RoleAdmin)[screen.AddStudent])
	assert.False(t, screen.Controls(user.RoleTeacher)[screen.AddStudent])
}

func TestHeader(t *testing.T) {
	day := func(h int) time.Time { return time.Date(2023, 9, 4, h, 30, 0, 0, time.UTC) }
	assert.Equal(t, "Good morning", screen.Greeting(day(8)))
	assert.Equal(t, "Good afternoon", screen.Greeting(day(12)))
	assert.Equal(t, "Good evening", screen.Greeting(day(18)))

	h := screen.NewHeader(parent, "/fees", day(9))
	assert.Equal(t, "Parent", h.RoleLabel)
	assert.Equal(t, "Good morning", h.Greeting)
	titles := make([]string, 0, len(h.Nav))
	for _, r := range h.Nav {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Dashboard", "Attendance", "Timetable", "Fees", "Profile"}, titles)
}

func TestLoadStudents(t *testing.T) {
	svc := testutil.NewDataService()
	ctx := context.Background()

	tests := []struct {
		name    string
		role    user.Role
		term    string
		wantIDs []string
		wantAdd bool
	}{
		{name: "all", role: user.RoleAdmin, wantIDs: []string{"S1001", "S1002", "S1003", "S1004", "S1005"}, wantAdd: true},
		{name: "case insensitive", role: user.RoleAdmin, term: "EMMA", wantIDs: []string{"S1002"}, wantAdd: true},
		{name: "by grade", role: user.RoleTeacher, term: "10a", wantIDs: []string{"S1001", "S1003"}},
		{name: "by email", role: user.RoleTeacher, term: "garcia@", wantIDs: []string{"S1004"}},
		{name: "no match", role: user.RoleTeacher, term: "zzz", wantIDs: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := screen.LoadStudents(ctx, svc, tc.role, tc.term)
			if assert.NoError(t, err) {
				ids := make([]string, 0, len(v.Rows))
				for _, s := range v.Rows {
					ids = append(ids, s.ID)
				}
				assert.Equal(t, tc.wantIDs, ids)
				assert.Equal(t, 5, v.Total)
				assert.Equal(t, tc.wantAdd, v.CanAdd)
			}
		})
	}
}

func TestLoadTeachers(t *testing.T) {
	v, err := screen.LoadTeachers(context.Background(), testutil.NewDataService(), user.RoleAdmin, "physics")
	if assert.NoError(t, err) {
		assert.Len(t, v.Rows, 1)
		assert.Equal(t, "T1003", v.Rows[0].ID)
		assert.True(t, v.CanAdd)
	}
}

func TestLoadClasses(t *testing.T) {
	svc := testutil.NewDataService()
	v, err := screen.LoadClasses(context.Background(), svc, user.RoleTeacher, "")
	if assert.NoError(t, err) {
		assert.False(t, v.CanAdd)
		if assert.Len(t, v.Rows, 3) {
			assert.Equal(t, "Robert Anderson", v.Rows[0].TeacherName)
			assert.Equal(t, 2, v.Rows[0].StudentCount)
			assert.Equal(t, 3, v.Rows[0].SubjectCount)
		}
	}

	v, err = screen.LoadClasses(context.Background(), svc, user.RoleAdmin, "wilson")
	if assert.NoError(t, err) && assert.Len(t, v.Rows, 1) {
		assert.Equal(t, "C1003", v.Rows[0].ID)
	}
}

func TestLoadSubjects(t *testing.T) {
	v, err := screen.LoadSubjects(context.Background(), testutil.NewDataService(), user.RoleStudent, "grade 10b")
	if assert.NoError(t, err) {
		ids := make([]string, 0, len(v.Rows))
		for _, r := range v.Rows {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"SUB1004", "SUB1005"}, ids)
		assert.False(t, v.CanAdd)
	}
}

func TestLoadTimetable(t *testing.T) {
	svc := testutil.NewDataService()
	ctx := context.Background()

	g, err := screen.LoadTimetable(ctx, svc, student, "")
	if assert.NoError(t, err) {
		assert.Equal(t, "C1001", g.Class.ID)
		assert.Equal(t, 8, g.Lessons())
		cell, ok := g.Cell("Monday", 1)
		assert.True(t, ok)
		assert.Equal(t, screen.Cell{Subject: "Mathematics", Code: "MATH101", Teacher: "Robert Anderson"}, cell)
		_, ok = g.Cell("Friday", 1)
		assert.False(t, ok)
	}

	g, err = screen.LoadTimetable(ctx, svc, admin, "C1003")
	if assert.NoError(t, err) {
		assert.Equal(t, 2, g.Lessons())
	}

	_, err = screen.LoadTimetable(ctx, svc, admin, "C9999")
	assert.Error(t, err)
}

func TestLibrary(t *testing.T) {
	svc := testutil.NewDataService()
	ctx := context.Background()
	now := time.Date(2023, 9, 20, 10, 0, 0, 0, time.UTC)

	v, err := screen.LoadLibrary(ctx, svc, user.RoleStudent, "")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 5, v.Total)
	assert.Equal(t, 2, v.Available)
	assert.Equal(t, 3, v.OnLoan)
	assert.True(t, v.CanBorrow)
	assert.False(t, v.CanAdd)
	assert.Equal(t, "John Smith", v.Rows[0].Borrower)

	n, err := v.Borrow("B1003", "Student User", now)
	assert.NoError(t, err)
	assert.Equal(t, "You have borrowed 'English Grammar Essentials'. Due date: 2023-10-04", n.Description)
	assert.Equal(t, 1, v.Available)

	_, err = v.Borrow("B1003", "Student User", now)
	assert.Equal(t, screen.ErrBookUnavailable, err)

	n, err = v.Reserve("B1005")
	assert.NoError(t, err)
	assert.Equal(t, "Book Reserved", n.Title)
	assert.Equal(t, 0, v.Available)

	v, err = screen.LoadLibrary(ctx, svc, user.RoleParent, "978-5678", "B1003")
	if assert.NoError(t, err) && assert.Len(t, v.Rows, 1) {
		assert.Equal(t, screen.Reserved, v.Rows[0].Status)
		assert.False(t, v.CanBorrow)
	}
}

func TestProfileAndSettings(t *testing.T) {
	v, err := screen.LoadProfile(context.Background(), testutil.NewDataService(), parent)
	if assert.NoError(t, err) {
		assert.Equal(t, "Parent", v.RoleLabel)
		assert.Equal(t, "Parent", v.Profile.FirstName)
		assert.Contains(t, v.Details, screen.Detail{Label: "Child", Value: "John Smith (10A)"})
	}

	s := screen.LoadSettings(user.RoleAdmin)
	assert.True(t, s.CanSave)
	assert.Equal(t, "Scholar Sync Academy", s.General.SchoolName)
	assert.True(t, s.Notifications.EmailNotifications)
	assert.Equal(t, "30", s.Security.SessionTimeout)
	assert.False(t, screen.LoadSettings(user.RoleTeacher).CanSave)
}
