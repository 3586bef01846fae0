package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/user"
)

// NewAttendanceID is used for records created by toggling an unmarked student. Mockable.
var NewAttendanceID = func() string {
	return "ATT-" + uuid.New().String()
}

// AttendanceSheet is the teacher's register for one class and date.
// Changes stay local to the sheet until saved.
type AttendanceSheet struct {
	Class    school.Class        `json:"class"`
	Classes  []school.Class      `json:"classes"`
	Date     string              `json:"date"`
	Students []school.Student    `json:"students"`
	Records  []school.Attendance `json:"records"`
}

// LoadAttendanceSheet builds the register of classID on date. An empty classID selects the first class.
func LoadAttendanceSheet(ctx context.Context, svc school.Service, classID, date string) (*AttendanceSheet, error) {
	idx, err := loadIndex(ctx, svc)
	if err != nil {
		return nil, err
	}
	if len(idx.classes) == 0 {
		return nil, school.ErrNotFound
	}

	cls := idx.classes[0]
	if classID != "" {
		if cls, err = svc.GetClassByID(ctx, classID); err != nil {
			return nil, errors.Wrapf(err, "getting class %q", classID)
		}
	}

	records, err := svc.GetAttendanceByClassID(ctx, cls.ID, date)
	if err != nil {
		return nil, errors.Wrap(err, "getting attendance")
	}

	sheet := &AttendanceSheet{Class: cls, Classes: idx.classes, Date: date, Records: records}
	for _, s := range idx.students {
		if s.ClassGrade == cls.Grade() {
			sheet.Students = append(sheet.Students, s)
		}
	}
	return sheet, nil
}

func (s *AttendanceSheet) find(studentID string) int {
	for i, r := range s.Records {
		if r.StudentID == studentID {
			return i
		}
	}
	return -1
}

// Status returns the student's status and whether the student has a record.
func (s *AttendanceSheet) Status(studentID string) (school.AttendanceStatus, bool) {
	if i := s.find(studentID); i >= 0 {
		return s.Records[i].Status, true
	}
	return "", false
}

// Mark returns the student's status, empty when unmarked.
func (s *AttendanceSheet) Mark(studentID string) school.AttendanceStatus {
	st, _ := s.Status(studentID)
	return st
}

func (s *AttendanceSheet) IsPresent(studentID string) bool {
	st, _ := s.Status(studentID)
	return st == school.Present
}

// Toggle flips an existing record between present and absent,
// or appends a present record when the student has none.
func (s *AttendanceSheet) Toggle(studentID string) {
	if i := s.find(studentID); i >= 0 {
		if s.Records[i].Status == school.Present {
			s.Records[i].Status = school.Absent
		} else {
			s.Records[i].Status = school.Present
		}
		return
	}
	s.Records = append(s.Records, school.Attendance{
		ID:        NewAttendanceID(),
		StudentID: studentID,
		ClassID:   s.Class.ID,
		Date:      s.Date,
		Status:    school.Present,
	})
}

// Apply sets the marks carried over from a previous render of the sheet.
func (s *AttendanceSheet) Apply(marks map[string]school.AttendanceStatus) {
	for studentID, status := range marks {
		if status != school.Present && status != school.Absent {
			continue
		}
		if cur, ok := s.Status(studentID); !ok || cur != status {
			s.Toggle(studentID)
			if cur, _ := s.Status(studentID); cur != status {
				s.Toggle(studentID)
			}
		}
	}
}

// Counts returns the number of present, absent and unmarked students.
func (s *AttendanceSheet) Counts() (present, absent, unmarked int) {
	for _, st := range s.Students {
		switch status, ok := s.Status(st.ID); {
		case !ok:
			unmarked++
		case status == school.Present:
			present++
		default:
			absent++
		}
	}
	return
}

type Tally struct {
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	Unmarked int `json:"unmarked"`
}

// Tally is Counts as a single value.
func (s *AttendanceSheet) Tally() Tally {
	p, a, u := s.Counts()
	return Tally{Present: p, Absent: a, Unmarked: u}
}

// Save simulates the submission of the sheet.
func (s *AttendanceSheet) Save(ctx context.Context, delay time.Duration) (core.Notification, error) {
	if err := core.Delay(ctx, delay); err != nil {
		return core.Failure("Error", "There was an error saving attendance. Please try again."), err
	}
	return core.Success("Attendance Saved", fmt.Sprintf("Attendance for %s has been saved.", FormatDate(s.Date))), nil
}

// FormatDate renders a YYYY-MM-DD date as "Sep 1, 2023"; other values are returned as is.
func FormatDate(date string) string {
	t, err := time.Parse(core.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// AttendanceSummary is a student's own attendance record.
type AttendanceSummary struct {
	Student school.Student      `json:"student"`
	Records []school.Attendance `json:"records"`
	Present int                 `json:"present"`
	Absent  int                 `json:"absent"`
	// Rate is the percentage of present days, rounded down.
	Rate int `json:"rate"`
}

func LoadAttendanceSummary(ctx context.Context, svc school.Service, student school.Student) (AttendanceSummary, error) {
	records, err := svc.GetAttendanceByStudentID(ctx, student.ID)
	if err != nil {
		return AttendanceSummary{}, errors.Wrap(err, "getting attendance")
	}
	sum := AttendanceSummary{Student: student, Records: records}
	for _, r := range records {
		if r.Status == school.Present {
			sum.Present++
		} else {
			sum.Absent++
		}
	}
	if len(records) > 0 {
		sum.Rate = sum.Present * 100 / len(records)
	}
	return sum, nil
}

// AttendanceView is the attendance screen: staff get the register, others their own records.
type AttendanceView struct {
	Sheet     *AttendanceSheet    `json:"sheet"`
	Summaries []AttendanceSummary `json:"summaries"`
	CanTake   bool                `json:"canTake"`
}

func LoadAttendance(ctx context.Context, svc school.Service, usr user.User, classID, date string) (AttendanceView, error) {
	if Allowed(usr.Role, TakeAttendance) {
		sheet, err := LoadAttendanceSheet(ctx, svc, classID, date)
		if err != nil {
			return AttendanceView{}, err
		}
		return AttendanceView{Sheet: sheet, CanTake: true}, nil
	}

	students, err := ownStudents(ctx, svc, usr)
	if err != nil {
		return AttendanceView{}, err
	}
	view := AttendanceView{}
	for _, st := range students {
		sum, err := LoadAttendanceSummary(ctx, svc, st)
		if err != nil {
			return AttendanceView{}, err
		}
		view.Summaries = append(view.Summaries, sum)
	}
	return view, nil
}

// ownStudents returns the student records a student or parent account is linked to.
func ownStudents(ctx context.Context, svc school.Service, usr user.User) ([]school.Student, error) {
	if usr.LinkedID == "" {
		return nil, nil
	}
	switch usr.Role {
	case user.RoleParent:
		students, err := svc.GetStudents(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "getting students")
		}
		return index{students: students}.children(usr.LinkedID), nil
	case user.RoleStudent:
		st, err := svc.GetStudentByID(ctx, usr.LinkedID)
		if err != nil {
			if errors.Cause(err) == school.ErrNotFound {
				return nil, nil
			}
			return nil, errors.Wrap(err, "getting student")
		}
		return []school.Student{st}, nil
	}
	return nil, nil
}
