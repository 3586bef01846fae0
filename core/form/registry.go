package form

import "github.com/pkg/errors"

var ErrUnknownForm = errors.New("unknown form")

// Names of the forms reachable by URL.
const (
	StudentForm       = "student"
	TeacherForm       = "teacher"
	ClassForm         = "class"
	SubjectForm       = "subject"
	FeeForm           = "fee"
	BookForm          = "book"
	PaymentForm       = "payment"
	ProfileForm       = "profile"
	PasswordForm      = "password"
	GeneralForm       = "general-settings"
	NotificationsForm = "notification-settings"
	SecurityForm      = "security-settings"
)

var registry = map[string]func() Form{
	StudentForm:       func() Form { return new(AddStudent) },
	TeacherForm:       func() Form { return new(AddTeacher) },
	ClassForm:         func() Form { return new(AddClass) },
	SubjectForm:       func() Form { return new(AddSubject) },
	FeeForm:           func() Form { return new(AddFee) },
	BookForm:          func() Form { return new(AddBook) },
	PaymentForm:       func() Form { return new(Payment) },
	ProfileForm:       func() Form { return new(UpdateProfile) },
	PasswordForm:      func() Form { return new(ChangePassword) },
	GeneralForm:       func() Form { return new(GeneralSettings) },
	NotificationsForm: func() Form { return new(NotificationSettings) },
	SecurityForm:      func() Form { return new(SecuritySettings) },
}

// New returns an empty form by name.
func New(name string) (Form, error) {
	newForm, ok := registry[name]
	if !ok {
		return nil, ErrUnknownForm
	}
	return newForm(), nil
}
