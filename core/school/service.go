package school

import "context"

// Service is the read-only data source of every screen.
// Implementations return fresh copies: callers may modify results freely.
// By-ID lookups return ErrNotFound when nothing matches.
type Service interface {
	GetStudents(ctx context.Context) ([]Student, error)
	GetStudentByID(ctx context.Context, id string) (Student, error)

	GetTeachers(ctx context.Context) ([]Teacher, error)
	GetTeacherByID(ctx context.Context, id string) (Teacher, error)

	GetClasses(ctx context.Context) ([]Class, error)
	GetClassByID(ctx context.Context, id string) (Class, error)

	GetSubjects(ctx context.Context) ([]Subject, error)
	GetSubjectsByClassID(ctx context.Context, classID string) ([]Subject, error)

	GetAttendanceByStudentID(ctx context.Context, studentID string) ([]Attendance, error)
	// GetAttendanceByClassID filters on date too unless it is empty.
	GetAttendanceByClassID(ctx context.Context, classID, date string) ([]Attendance, error)

	GetExams(ctx context.Context) ([]Exam, error)
	GetExamsByClassID(ctx context.Context, classID string) ([]Exam, error)

	GetResultsByStudentID(ctx context.Context, studentID string) ([]Result, error)
	GetResultsByExamID(ctx context.Context, examID string) ([]Result, error)

	GetParents(ctx context.Context) ([]Parent, error)
	GetParentByID(ctx context.Context, id string) (Parent, error)

	GetFees(ctx context.Context) ([]Fee, error)
	GetFeePayments(ctx context.Context) ([]FeePayment, error)
	GetFeePaymentsByStudentID(ctx context.Context, studentID string) ([]FeePayment, error)

	GetBooks(ctx context.Context) ([]Book, error)
	GetBooksByStudentID(ctx context.Context, studentID string) ([]Book, error)

	// GetTimetableByClassID filters on day too unless it is empty; entries are sorted by period.
	GetTimetableByClassID(ctx context.Context, classID, day string) ([]Timetable, error)

	GetEvents(ctx context.Context) ([]Event, error)
}
