package school

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("record not found")

type (
	AttendanceStatus string
	PaymentStatus    string
	PaymentMethod    string
)

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"

	Paid    PaymentStatus = "paid"
	Pending PaymentStatus = "pending"
	Overdue PaymentStatus = "overdue"

	MethodCard PaymentMethod = "card"
	MethodBank PaymentMethod = "bank"
)

// Weekdays lists the school days in timetable order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

type Student struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	ClassGrade     string `json:"classGrade"`
	EnrollmentDate string `json:"enrollmentDate"`
	ParentID       string `json:"parentId"`
}

func (s Student) FullName() string { return s.FirstName + " " + s.LastName }

type Teacher struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	SubjectTaught string `json:"subjectTaught"`
	Qualification string `json:"qualification"`
	HireDate      string `json:"hireDate"`
}

func (t Teacher) FullName() string { return t.FirstName + " " + t.LastName }

type Class struct {
	ID             string `json:"id"`
	ClassName      string `json:"className"`
	Section        string `json:"section"`
	ClassTeacherID string `json:"classTeacherId"`
}

// Grade is the grade code students carry in Student.ClassGrade ("Grade 10A" -> "10A").
func (c Class) Grade() string {
	return strings.TrimSpace(strings.TrimPrefix(c.ClassName, "Grade"))
}

type Subject struct {
	ID          string `json:"id"`
	SubjectName string `json:"subjectName"`
	SubjectCode string `json:"subjectCode"`
	ClassID     string `json:"classId"`
	TeacherID   string `json:"teacherId"`
}

type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	ClassID   string           `json:"classId"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
}

type Exam struct {
	ID       string `json:"id"`
	ExamType string `json:"examType"`
	Date     string `json:"date"`
	ClassID  string `json:"classId"`
}

type Result struct {
	ID            string `json:"id"`
	StudentID     string `json:"studentId"`
	ExamID        string `json:"examId"`
	SubjectID     string `json:"subjectId"`
	MarksObtained int    `json:"marksObtained"`
	Grade         string `json:"grade"`
}

type Parent struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func (p Parent) FullName() string { return p.FirstName + " " + p.LastName }

// Fee is an item of the fee schedule. An empty ClassID applies to every class.
type Fee struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Amount  int    `json:"amount"`
	DueDate string `json:"dueDate"`
	ClassID string `json:"classId,omitempty"`
}

type FeePayment struct {
	ID            string        `json:"id"`
	StudentID     string        `json:"studentId"`
	FeeID         string        `json:"feeId,omitempty"`
	AmountPaid    int           `json:"amountPaid"`
	PaymentDate   string        `json:"paymentDate"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
}

type Book struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	ISBN       string `json:"isbn"`
	StudentID  string `json:"studentId,omitempty"`
	IssueDate  string `json:"issueDate,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`
}

// OnLoan reports whether the book is currently issued to a student.
func (b Book) OnLoan() bool { return b.StudentID != "" }

type Timetable struct {
	ID           string `json:"id"`
	ClassID      string `json:"classId"`
	DayOfWeek    string `json:"dayOfWeek"`
	PeriodNumber int    `json:"periodNumber"`
	SubjectID    string `json:"subjectId"`
	TeacherID    string `json:"teacherId"`
}

type Event struct {
	ID          string `json:"id"`
	EventName   string `json:"eventName"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
}

type Admin struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
