package screen

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/user"
)

const recentStudents = 5

type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Hint  string `json:"hint"`
}

type ResultRow struct {
	school.Result
	Subject string `json:"subject"`
	Exam    string `json:"exam"`
}

type Dashboard struct {
	Role           user.Role        `json:"role"`
	Stats          []Stat           `json:"stats"`
	RecentStudents []school.Student `json:"recentStudents"`
	Children       []school.Student `json:"children"`
	Results        []ResultRow      `json:"results"`
	Events         []school.Event   `json:"events"`
}

// LoadDashboard builds the landing screen of usr. Staff see school wide figures,
// students their own progress and parents their children's.
func LoadDashboard(ctx context.Context, svc school.Service, usr user.User, now time.Time) (Dashboard, error) {
	events, err := svc.GetEvents(ctx)
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "getting events")
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	d := Dashboard{Role: usr.Role, Events: events}

	switch usr.Role {
	case user.RoleAdmin:
		err = d.loadAdmin(ctx, svc)
	case user.RoleTeacher:
		err = d.loadTeacher(ctx, svc, usr)
	case user.RoleParent:
		err = d.loadParent(ctx, svc, usr)
	default:
		err = d.loadStudent(ctx, svc, usr, now)
	}
	return d, err
}

func (d *Dashboard) loadAdmin(ctx context.Context, svc school.Service) error {
	idx, err := loadIndex(ctx, svc)
	if err != nil {
		return err
	}
	present, total := 0, 0
	for _, c := range idx.classes {
		records, err := svc.GetAttendanceByClassID(ctx, c.ID, "")
		if err != nil {
			return errors.Wrap(err, "getting attendance")
		}
		for _, r := range records {
			if r.Status == school.Present {
				present++
			}
			total++
		}
	}

	d.Stats = []Stat{
		{Title: "Total Students", Value: fmt.Sprint(len(idx.students)), Hint: "Enrolled students"},
		{Title: "Total Teachers", Value: fmt.Sprint(len(idx.teachers)), Hint: "Teaching staff"},
		{Title: "Classes", Value: fmt.Sprint(len(idx.classes)), Hint: "Active classes"},
		{Title: "Attendance Rate", Value: percent(present, total), Hint: "Recorded attendance"},
	}
	d.RecentStudents = firstStudents(idx.students)
	return nil
}

func (d *Dashboard) loadTeacher(ctx context.Context, svc school.Service, usr user.User) error {
	idx, err := loadIndex(ctx, svc)
	if err != nil {
		return err
	}
	subjects, err := svc.GetSubjects(ctx)
	if err != nil {
		return errors.Wrap(err, "getting subjects")
	}

	mine := make(map[string]school.Class)
	for _, c := range idx.classes {
		if c.ClassTeacherID == usr.LinkedID {
			mine[c.ID] = c
		}
	}
	for _, sub := range subjects {
		if sub.TeacherID == usr.LinkedID {
			for _, c := range idx.classes {
				if c.ID == sub.ClassID {
					mine[c.ID] = c
				}
			}
		}
	}

	var students []school.Student
	lessons := 0
	for _, c := range mine {
		for _, s := range idx.students {
			if s.ClassGrade == c.Grade() {
				students = append(students, s)
			}
		}
		entries, err := svc.GetTimetableByClassID(ctx, c.ID, "")
		if err != nil {
			return errors.Wrap(err, "getting timetable")
		}
		for _, e := range entries {
			if e.TeacherID == usr.LinkedID {
				lessons++
			}
		}
	}
	sort.SliceStable(students, func(i, j int) bool { return students[i].ID < students[j].ID })

	d.Stats = []Stat{
		{Title: "My Classes", Value: fmt.Sprint(len(mine)), Hint: "Classes you teach"},
		{Title: "Students", Value: fmt.Sprint(len(students)), Hint: "Across your classes"},
		{Title: "Weekly Lessons", Value: fmt.Sprint(lessons), Hint: "Scheduled periods"},
	}
	d.RecentStudents = firstStudents(students)
	return nil
}

func (d *Dashboard) loadStudent(ctx context.Context, svc school.Service, usr user.User, now time.Time) error {
	students, err := ownStudents(ctx, svc, usr)
	if err != nil || len(students) == 0 {
		return err
	}
	st := students[0]

	sum, err := LoadAttendanceSummary(ctx, svc, st)
	if err != nil {
		return err
	}
	books, err := svc.GetBooksByStudentID(ctx, st.ID)
	if err != nil {
		return errors.Wrap(err, "getting books")
	}
	lessonsToday := 0
	classes, err := svc.GetClasses(ctx)
	if err != nil {
		return errors.Wrap(err, "getting classes")
	}
	if c, ok := (index{classes: classes}).classOfGrade(st.ClassGrade); ok {
		entries, err := svc.GetTimetableByClassID(ctx, c.ID, now.Weekday().String())
		if err != nil {
			return errors.Wrap(err, "getting timetable")
		}
		lessonsToday = len(entries)
	}
	if d.Results, err = loadResults(ctx, svc, st.ID); err != nil {
		return err
	}

	d.Stats = []Stat{
		{Title: "Attendance", Value: fmt.Sprintf("%d%%", sum.Rate), Hint: fmt.Sprintf("%d of %d days present", sum.Present, len(sum.Records))},
		{Title: "Classes Today", Value: fmt.Sprint(lessonsToday), Hint: now.Weekday().String()},
		{Title: "Library Books", Value: fmt.Sprint(len(books)), Hint: "Currently borrowed"},
	}
	return nil
}

func (d *Dashboard) loadParent(ctx context.Context, svc school.Service, usr user.User) error {
	children, err := ownStudents(ctx, svc, usr)
	if err != nil {
		return err
	}
	d.Children = children

	present, total := 0, 0
	for _, c := range children {
		sum, err := LoadAttendanceSummary(ctx, svc, c)
		if err != nil {
			return err
		}
		present += sum.Present
		total += len(sum.Records)
	}
	fam, err := LoadFamilyFees(ctx, svc, usr)
	if err != nil {
		return err
	}
	due := 0
	for _, f := range fam {
		due += f.TotalDue
	}
	feeStatus := "All paid"
	if due > 0 {
		feeStatus = core.FormatRupees(due) + " due"
	}

	d.Stats = []Stat{
		{Title: "Children", Value: fmt.Sprint(len(children)), Hint: "Enrolled"},
		{Title: "Attendance", Value: percent(present, total), Hint: "Across your children"},
		{Title: "Fee Status", Value: feeStatus, Hint: "Outstanding fees"},
	}
	return nil
}

func loadResults(ctx context.Context, svc school.Service, studentID string) ([]ResultRow, error) {
	results, err := svc.GetResultsByStudentID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "getting results")
	}
	subjects, err := svc.GetSubjects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting subjects")
	}
	exams, err := svc.GetExams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting exams")
	}

	rows := make([]ResultRow, 0, len(results))
	for _, r := range results {
		row := ResultRow{Result: r}
		for _, s := range subjects {
			if s.ID == r.SubjectID {
				row.Subject = s.SubjectName
			}
		}
		for _, e := range exams {
			if e.ID == r.ExamID {
				row.Exam = e.ExamType
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func firstStudents(list []school.Student) []school.Student {
	if len(list) > recentStudents {
		return list[:recentStudents]
	}
	return list
}

func percent(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", n*100/total)
}
