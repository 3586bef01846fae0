package screen

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/user"
)

// Students

type StudentsView struct {
	Search string           `json:"search"`
	Rows   []school.Student `json:"rows"`
	Total  int              `json:"total"`
	CanAdd bool             `json:"canAdd"`
}

// FilterStudents keeps students whose first name, last name, email or grade contains term.
func FilterStudents(list []school.Student, term string) []school.Student {
	res := make([]school.Student, 0, len(list))
	for _, s := range list {
		if core.MatchesSearch(term, s.FirstName, s.LastName, s.Email, s.ClassGrade) {
			res = append(res, s)
		}
	}
	return res
}

func LoadStudents(ctx context.Context, svc school.Service, role user.Role, term string) (StudentsView, error) {
	list, err := svc.GetStudents(ctx)
	if err != nil {
		return StudentsView{}, errors.Wrap(err, "getting students")
	}
	return StudentsView{
		Search: term,
		Rows:   FilterStudents(list, term),
		Total:  len(list),
		CanAdd: Allowed(role, AddStudent),
	}, nil
}

// Teachers

type TeachersView struct {
	Search string           `json:"search"`
	Rows   []school.Teacher `json:"rows"`
	Total  int              `json:"total"`
	CanAdd bool             `json:"canAdd"`
}

// FilterTeachers keeps teachers whose first name, last name, email or subject contains term.
func FilterTeachers(list []school.Teacher, term string) []school.Teacher {
	res := make([]school.Teacher, 0, len(list))
	for _, t := range list {
		if core.MatchesSearch(term, t.FirstName, t.LastName, t.Email, t.SubjectTaught) {
			res = append(res, t)
		}
	}
	return res
}

func LoadTeachers(ctx context.Context, svc school.Service, role user.Role, term string) (TeachersView, error) {
	list, err := svc.GetTeachers(ctx)
	if err != nil {
		return TeachersView{}, errors.Wrap(err, "getting teachers")
	}
	return TeachersView{
		Search: term,
		Rows:   FilterTeachers(list, term),
		Total:  len(list),
		CanAdd: Allowed(role, AddTeacher),
	}, nil
}

// Classes

type ClassRow struct {
	school.Class
	TeacherName  string `json:"teacherName"`
	StudentCount int    `json:"studentCount"`
	SubjectCount int    `json:"subjectCount"`
}

type ClassesView struct {
	Search string     `json:"search"`
	Rows   []ClassRow `json:"rows"`
	CanAdd bool       `json:"canAdd"`
}

// FilterClasses keeps classes whose name, section or class teacher name contains term.
func FilterClasses(rows []ClassRow, term string) []ClassRow {
	res := make([]ClassRow, 0, len(rows))
	for _, r := range rows {
		if core.MatchesSearch(term, r.ClassName, r.Section, r.TeacherName) {
			res = append(res, r)
		}
	}
	return res
}

func LoadClasses(ctx context.Context, svc school.Service, role user.Role, term string) (ClassesView, error) {
	idx, err := loadIndex(ctx, svc)
	if err != nil {
		return ClassesView{}, err
	}
	subjects, err := svc.GetSubjects(ctx)
	if err != nil {
		return ClassesView{}, errors.Wrap(err, "getting subjects")
	}

	rows := make([]ClassRow, 0, len(idx.classes))
	for _, c := range idx.classes {
		row := ClassRow{Class: c, TeacherName: idx.teacherName(c.ClassTeacherID)}
		for _, s := range idx.students {
			if s.ClassGrade == c.Grade() {
				row.StudentCount++
			}
		}
		for _, sub := range subjects {
			if sub.ClassID == c.ID {
				row.SubjectCount++
			}
		}
		rows = append(rows, row)
	}
	return ClassesView{Search: term, Rows: FilterClasses(rows, term), CanAdd: Allowed(role, AddClass)}, nil
}

// Subjects

type SubjectRow struct {
	school.Subject
	ClassName   string `json:"className"`
	TeacherName string `json:"teacherName"`
}

type SubjectsView struct {
	Search string       `json:"search"`
	Rows   []SubjectRow `json:"rows"`
	CanAdd bool         `json:"canAdd"`
}

// FilterSubjects keeps subjects whose name, code, class name or teacher name contains term.
func FilterSubjects(rows []SubjectRow, term string) []SubjectRow {
	res := make([]SubjectRow, 0, len(rows))
	for _, r := range rows {
		if core.MatchesSearch(term, r.SubjectName, r.SubjectCode, r.ClassName, r.TeacherName) {
			res = append(res, r)
		}
	}
	return res
}

func LoadSubjects(ctx context.Context, svc school.Service, role user.Role, term string) (SubjectsView, error) {
	idx, err := loadIndex(ctx, svc)
	if err != nil {
		return SubjectsView{}, err
	}
	subjects, err := svc.GetSubjects(ctx)
	if err != nil {
		return SubjectsView{}, errors.Wrap(err, "getting subjects")
	}

	rows := make([]SubjectRow, 0, len(subjects))
	for _, sub := range subjects {
		rows = append(rows, SubjectRow{
			Subject:     sub,
			ClassName:   idx.className(sub.ClassID),
			TeacherName: idx.teacherName(sub.TeacherID),
		})
	}
	return SubjectsView{Search: term, Rows: FilterSubjects(rows, term), CanAdd: Allowed(role, AddSubject)}, nil
}

// index resolves names across entities for the tabular screens.
type index struct {
	students []school.Student
	teachers []school.Teacher
	classes  []school.Class
}

func loadIndex(ctx context.Context, svc school.Service) (index, error) {
	var idx index
	var err error
	if idx.students, err = svc.GetStudents(ctx); err != nil {
		return idx, errors.Wrap(err, "getting students")
	}
	if idx.teachers, err = svc.GetTeachers(ctx); err != nil {
		return idx, errors.Wrap(err, "getting teachers")
	}
	if idx.classes, err = svc.GetClasses(ctx); err != nil {
		return idx, errors.Wrap(err, "getting classes")
	}
	return idx, nil
}

func (idx index) teacherName(id string) string {
	for _, t := range idx.teachers {
		if t.ID == id {
			return t.FullName()
		}
	}
	return ""
}

func (idx index) className(id string) string {
	for _, c := range idx.classes {
		if c.ID == id {
			return c.ClassName
		}
	}
	return ""
}

func (idx index) studentName(id string) string {
	for _, s := range idx.students {
		if s.ID == id {
			return s.FullName()
		}
	}
	return ""
}

func (idx index) student(id string) (school.Student, bool) {
	for _, s := range idx.students {
		if s.ID == id {
			return s, true
		}
	}
	return school.Student{}, false
}

// classOfGrade returns the class whose grade code is grade.
func (idx index) classOfGrade(grade string) (school.Class, bool) {
	for _, c := range idx.classes {
		if c.Grade() == grade {
			return c, true
		}
	}
	return school.Class{}, false
}

// children returns the students of parent.
func (idx index) children(parentID string) []school.Student {
	res := make([]school.Student, 0, 2)
	for _, s := range idx.students {
		if s.ParentID == parentID {
			res = append(res, s)
		}
	}
	return res
}
