package fixtures

import (
	"context"
	"sort"
	"time"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/school"
)

// simulated network latencies
const (
	delayList     = 500 * time.Millisecond
	delayShort    = 400 * time.Millisecond
	delayByID     = 300 * time.Millisecond
	delayFiltered = 400 * time.Millisecond
)

type Options struct {
	// Latency makes every accessor wait like a remote call would.
	Latency bool
}

// Service serves the static fixtures. It never mutates them.
type Service struct {
	opts Options
}

var _ school.Service = (*Service)(nil)

func NewService(opts Options) *Service {
	return &Service{opts: opts}
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if !s.opts.Latency {
		return ctx.Err()
	}
	return core.Delay(ctx, d)
}

// Students

func (s *Service) GetStudents(ctx context.Context) ([]school.Student, error) {
	if err := s.wait(ctx, delayList); err != nil {
		return nil, err
	}
	return append([]school.Student(nil), students...), nil
}

func (s *Service) GetStudentByID(ctx context.Context, id string) (school.Student, error) {
	if err := s.wait(ctx, delayByID); err != nil {
		return school.Student{}, err
	}
	for _, st := range students {
		if st.ID == id {
			return st, nil
		}
	}
	return school.Student{}, school.ErrNotFound
}

// Teachers

func (s *Service) GetTeachers(ctx context.Context) ([]school.Teacher, error) {
	if err := s.wait(ctx, delayList); err != nil {
		return nil, err
	}
	return append([]school.Teacher(nil), teachers...), nil
}

func (s *Service) GetTeacherByID(ctx context.Context, id string) (school.Teacher, error) {
	if err := s.wait(ctx, delayByID); err != nil {
		return school.Teacher{}, err
	}
	for _, t := range teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return school.Teacher{}, school.ErrNotFound
}

// Classes

func (s *Service) GetClasses(ctx context.Context) ([]school.Class, error) {
	if err := s.wait(ctx, delayShort); err != nil {
		return nil, err
	}
	return append([]school.Class(nil), classes...), nil
}

func (s *Service) GetClassByID(ctx context.Context, id string) (school.Class, error) {
	if err := s.wait(ctx, delayByID); err != nil {
		return school.Class{}, err
	}
	for _, c := range classes {
		if c.ID == id {
			return c, nil
		}
	}
	return school.Class{}, school.ErrNotFound
}

// Subjects

func (s *Service) GetSubjects(ctx context.Context) ([]school.Subject, error) {
	if err := s.wait(ctx, delayShort); err != nil {
		return nil, err
	}
	return append([]school.Subject(nil), subjects...), nil
}

func (s *Service) GetSubjectsByClassID(ctx context.Context, classID string) ([]school.Subject, error) {
	if err := s.wait(ctx, delayByID); err != nil {
		return nil, err
	}
	res := make([]school.Subject, 0, len(subjects))
	for _, sub := range subjects {
		if sub.ClassID == classID {
			res = append(res, sub)
		}
	}
	return res, nil
}

// Attendance

func (s *Service) GetAttendanceByStudentID(ctx context.Context, studentID string) ([]school.Attendance, error) {
	if err := s.wait(ctx, delayFiltered); err != nil {
		return nil, err
	}
	res := make([]school.Attendance, 0, len(attendance))
	for _, att := range attendance {
		if att.StudentID == studentID {
			res = append(res, att)
		}
	}
	return res, nil
}

func (s *Service) GetAttendanceByClassID(ctx context.Context, classID, date string) ([]school.Attendance, error) {
	if err := s.wait(ctx, delayFiltered); err != nil {
		return nil, err
	}
	res := make([]school.Attendance, 0, len(attendance))
	for _, att := range attendance {
		if att.ClassID == classID && (date == "" || att.Date == date) {
			res = append(res, att)
		}
	}
	return res, nil
}

// Exams & Results

func (s *Service) GetExams(ctx context.Context) ([]school.Exam, error) {
	if err := s.wait(ctx, delayByID); err != nil {
		return nil, err
	}
	return append([]school.Exam(nil), exams...), nil
}

func (s *Service) GetExamsByClassID(ctx context.Context, classID string) ([]school.Exam, error) {
	if err := s.wait(ctx, delayByID); err != nil {
		return nil, err
	}
	res := make([]school.Exam, 0, len(exams))
	for _, e := range exams {
		if e.ClassID == classID {
			res = append(res, e)
		}
	}
	return res, nil
}

func (s *Service) GetResultsByStudentID(ctx context.Context, studentID string) ([]school.Result, error) {
	if err := s.wait(ctx, delayFiltered); err != nil {
		return nil, err
	}
	res := make([]school.Result, 0, len(results))
	for _, r := range results {
		if r.StudentID == studentID {
			res = append(res, r)
		}
	}
	return res, nil
}

func (s *Service) GetResultsByExamID(ctx context.Context, examID string) ([]school.Result, error) {
	if err := s.wait(ctx, delayFiltered); err != nil {
		return nil, err
	}
	res := make([]school.Result, 0, len(results))
	for _, r := range results {
		if r.ExamID == examID {
			res = append(res, r)
		}
	}
	return res, nil
}

// Parents

func (s *Service) GetParents(ctx context.Context) ([]school.Parent, error) {
	if err := s.wait(ctx, delayList); err != nil {
		return nil, err
	}
	return append([]school.Parent(nil), parents...), nil
}

func (s *Service) GetParentByID(ctx context.Context, id string) (school.Parent, error) {
	if err := s.wait(ctx, delayByID); err != nil {
		return school.Parent{}, err
	}
	for _, p := range parents {
		if p.ID == id {
			return p, nil
		}
	}
	return school.Parent{}, school.ErrNotFound
}

// Fees

func (s *Service) GetFees(ctx context.Context) ([]school.Fee, error) {
	if err := s.wait(ctx, delayShort); err != nil {
		return nil, err
	}
	return append([]school.Fee(nil), fees...), nil
}

func (s *Service) GetFeePayments(ctx context.Context) ([]school.FeePayment, error) {
	if err := s.wait(ctx, delayList); err != nil {
		return nil, err
	}
	return append([]school.FeePayment(nil), feePayments...), nil
}

func (s *Service) GetFeePaymentsByStudentID(ctx context.Context, studentID string) ([]school.FeePayment, error) {
	if err := s.wait(ctx, delayFiltered); err != nil {
		return nil, err
	}
	res := make([]school.FeePayment, 0, len(feePayments))
	for _, p := range feePayments {
		if p.StudentID == studentID {
			res = append(res, p)
		}
	}
	return res, nil
}

// Library

func (s *Service) GetBooks(ctx context.Context) ([]school.Book, error) {
	if err := s.wait(ctx, delayList); err != nil {
		return nil, err
	}
	return append([]school.Book(nil), books...), nil
}

func (s *Service) GetBooksByStudentID(ctx context.Context, studentID string) ([]school.Book, error) {
	if err := s.wait(ctx, delayFiltered); err != nil {
		return nil, err
	}
	res := make([]school.Book, 0, len(books))
	for _, b := range books {
		if b.StudentID == studentID {
			res = append(res, b)
		}
	}
	return res, nil
}

// Timetable

func (s *Service) GetTimetableByClassID(ctx context.Context, classID, day string) ([]school.Timetable, error) {
	if err := s.wait(ctx, delayFiltered); err != nil {
		return nil, err
	}
	res := make([]school.Timetable, 0, len(timetables))
	for _, tt := range timetables {
		if tt.ClassID == classID && (day == "" || tt.DayOfWeek == day) {
			res = append(res, tt)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].PeriodNumber < res[j].PeriodNumber })
	return res, nil
}

// Events

func (s *Service) GetEvents(ctx context.Context) ([]school.Event, error) {
	if err := s.wait(ctx, delayShort); err != nil {
		return nil, err
	}
	return append([]school.Event(nil), events...), nil
}
