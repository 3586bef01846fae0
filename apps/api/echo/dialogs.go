package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/form"
	"github.com/trezcool/scholarsync/core/route"
	"github.com/trezcool/scholarsync/core/screen"
	"github.com/trezcool/scholarsync/core/user"
	metricsvc "github.com/trezcool/scholarsync/services/metrics"
)

type field struct {
	Name  string
	Label string
	Type  string // input type; "textarea" and "checkbox" are rendered apart
	Hint  string
}

// dialogDef describes a form dialog of a screen.
type dialogDef struct {
	Form    string
	Title   string
	Submit  string
	Action  string
	Screen  string
	Control screen.Control // empty: any signed in user
	Inline  bool           // rendered within the screen rather than as a dialog
	Fields  []field
}

var dialogs = []dialogDef{
	{
		Form:    form.StudentForm,
		Title:   "Add New Student",
		Submit:  "Add Student",
		Action:  "/students/add",
		Screen:  route.PathStudents,
		Control: screen.AddStudent,
		Fields: []field{
			{Name: "firstName", Label: "First Name", Type: "text"},
			{Name: "lastName", Label: "Last Name", Type: "text"},
			{Name: "email", Label: "Email", Type: "email"},
			{Name: "grade", Label: "Class/Grade", Type: "text", Hint: "e.g. 10A"},
			{Name: "parentPhone", Label: "Parent Phone", Type: "tel"},
			{Name: "dob", Label: "Date of Birth", Type: "date"},
		},
	},
	{
		Form:    form.TeacherForm,
		Title:   "Add New Teacher",
		Submit:  "Add Teacher",
		Action:  "/teachers/add",
		Screen:  route.PathTeachers,
		Control: screen.AddTeacher,
		Fields: []field{
			{Name: "firstName", Label: "First Name", Type: "text"},
			{Name: "lastName", Label: "Last Name", Type: "text"},
			{Name: "email", Label: "Email", Type: "email"},
			{Name: "subject", Label: "Subject", Type: "text"},
			{Name: "phone", Label: "Phone", Type: "tel"},
			{Name: "qualification", Label: "Qualification", Type: "text"},
		},
	},
	{
		Form:    form.ClassForm,
		Title:   "Add New Class",
		Submit:  "Add Class",
		Action:  "/classes/add",
		Screen:  route.PathClasses,
		Control: screen.AddClass,
		Fields: []field{
			{Name: "name", Label: "Class Name", Type: "text", Hint: "e.g. Grade 10"},
			{Name: "section", Label: "Section", Type: "text"},
			{Name: "capacity", Label: "Capacity", Type: "number"},
			{Name: "classTeacher", Label: "Class Teacher", Type: "text"},
			{Name: "room", Label: "Room", Type: "text"},
		},
	},
	{
		Form:    form.SubjectForm,
		Title:   "Add New Subject",
		Submit:  "Add Subject",
		Action:  "/subjects/add",
		Screen:  route.PathSubjects,
		Control: screen.AddSubject,
		Fields: []field{
			{Name: "name", Label: "Subject Name", Type: "text"},
			{Name: "code", Label: "Subject Code", Type: "text"},
			{Name: "class", Label: "Class", Type: "text"},
			{Name: "teacher", Label: "Teacher", Type: "text"},
		},
	},
	{
		Form:    form.FeeForm,
		Title:   "Add New Fee",
		Submit:  "Add Fee",
		Action:  "/fees/add",
		Screen:  route.PathFees,
		Control: screen.AddFee,
		Fields: []field{
			{Name: "title", Label: "Fee Title", Type: "text"},
			{Name: "amount", Label: "Amount (₹)", Type: "text"},
			{Name: "dueDate", Label: "Due Date", Type: "date"},
			{Name: "class", Label: "Class", Type: "text", Hint: "leave empty for all classes"},
		},
	},
	{
		Form:    form.BookForm,
		Title:   "Add New Book",
		Submit:  "Add Book",
		Action:  "/library/add",
		Screen:  route.PathLibrary,
		Control: screen.AddBook,
		Fields: []field{
			{Name: "title", Label: "Title", Type: "text"},
			{Name: "author", Label: "Author", Type: "text"},
			{Name: "isbn", Label: "ISBN", Type: "text"},
			{Name: "publishedYear", Label: "Published Year", Type: "text"},
			{Name: "category", Label: "Category", Type: "text"},
			{Name: "copies", Label: "Copies", Type: "number"},
			{Name: "description", Label: "Description", Type: "textarea"},
		},
	},
	{
		Form:    form.PaymentForm,
		Title:   "Pay Fee",
		Submit:  "Pay Now",
		Action:  "/fees/pay",
		Screen:  route.PathFees,
		Control: screen.PayFee,
		Fields: []field{
			{Name: "feeId", Type: "hidden"},
			{Name: "cardNumber", Label: "Card Number", Type: "text"},
			{Name: "cardName", Label: "Card Holder Name", Type: "text"},
			{Name: "expiryDate", Label: "Expiry Date", Type: "text", Hint: "MM/YY"},
			{Name: "cvv", Label: "CVV", Type: "password"},
		},
	},
	{
		Form:   form.ProfileForm,
		Title:  "Personal Information",
		Submit: "Save Changes",
		Action: "/profile",
		Screen: route.PathProfile,
		Inline: true,
		Fields: []field{
			{Name: "firstName", Label: "First Name", Type: "text"},
			{Name: "lastName", Label: "Last Name", Type: "text"},
			{Name: "email", Label: "Email", Type: "email"},
		},
	},
	{
		Form:   form.PasswordForm,
		Title:  "Change Password",
		Submit: "Update Password",
		Action: "/profile/password",
		Screen: route.PathProfile,
		Inline: true,
		Fields: []field{
			{Name: "currentPassword", Label: "Current Password", Type: "password"},
			{Name: "newPassword", Label: "New Password", Type: "password"},
			{Name: "confirmPassword", Label: "Confirm Password", Type: "password"},
		},
	},
	{
		Form:    form.GeneralForm,
		Title:   "General Settings",
		Submit:  "Save Changes",
		Action:  "/settings/general",
		Screen:  route.PathSettings,
		Control: screen.SaveSettings,
		Inline:  true,
		Fields: []field{
			{Name: "schoolName", Label: "School Name", Type: "text"},
			{Name: "academicYear", Label: "Academic Year", Type: "text"},
			{Name: "address", Label: "Address", Type: "text"},
			{Name: "phone", Label: "Phone", Type: "tel"},
			{Name: "email", Label: "Email", Type: "email"},
		},
	},
	{
		Form:    form.NotificationsForm,
		Title:   "Notification Settings",
		Submit:  "Save Changes",
		Action:  "/settings/notifications",
		Screen:  route.PathSettings,
		Control: screen.SaveSettings,
		Inline:  true,
		Fields: []field{
			{Name: "emailNotifications", Label: "Email Notifications", Type: "checkbox"},
			{Name: "smsNotifications", Label: "SMS Notifications", Type: "checkbox"},
			{Name: "attendanceAlerts", Label: "Attendance Alerts", Type: "checkbox"},
			{Name: "feeReminders", Label: "Fee Reminders", Type: "checkbox"},
			{Name: "examResults", Label: "Exam Results", Type: "checkbox"},
		},
	},
	{
		Form:    form.SecurityForm,
		Title:   "Security Settings",
		Submit:  "Save Changes",
		Action:  "/settings/security",
		Screen:  route.PathSettings,
		Control: screen.SaveSettings,
		Inline:  true,
		Fields: []field{
			{Name: "sessionTimeout", Label: "Session Timeout (minutes)", Type: "number"},
			{Name: "passwordExpiry", Label: "Password Expiry (days)", Type: "number"},
			{Name: "loginAttempts", Label: "Max Login Attempts", Type: "number"},
			{Name: "twoFactorAuth", Label: "Two-Factor Authentication", Type: "checkbox"},
		},
	},
}

func lookupDialog(name string) (dialogDef, bool) {
	for _, d := range dialogs {
		if d.Form == name {
			return d, true
		}
	}
	return dialogDef{}, false
}

// screenDialogs returns the dialogs of screen path that role may use.
func screenDialogs(path string, role user.Role) []dialogDef {
	var res []dialogDef
	for _, d := range dialogs {
		if d.Screen == path && (d.Control == "" || screen.Allowed(role, d.Control)) {
			res = append(res, d)
		}
	}
	return res
}

type fieldView struct {
	field
	Value   string
	Checked bool
	Error   string
}

// dialogView is a dialog as rendered: open (or inline), with the last values and field errors.
type dialogView struct {
	dialogDef
	Open   bool
	State  string
	Fields []fieldView
	CSRF   string
}

func newDialogView(d dialogDef, dlg *form.Dialog, values form.Form) *dialogView {
	if values == nil {
		values = dlg.Values()
	}
	errs := make(map[string]string)
	for _, fe := range dlg.Errors() {
		if _, ok := errs[fe.Field]; !ok {
			errs[fe.Field] = fe.Error
		}
	}
	vals := formValues(values)

	v := &dialogView{dialogDef: d, Open: dlg.State() != form.Closed, State: dlg.State().String()}
	for _, f := range d.Fields {
		fv := fieldView{field: f, Error: errs[f.Name]}
		switch val := vals[f.Name].(type) {
		case bool:
			fv.Checked = val
		case nil:
		default:
			fv.Value = fmt.Sprint(val)
		}
		if f.Type == "password" {
			fv.Value = ""
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}

// formValues reads the fields of f by their wire names.
func formValues(f form.Form) map[string]interface{} {
	m := make(map[string]interface{})
	if f == nil {
		return m
	}
	data, err := json.Marshal(f)
	if err == nil {
		_ = json.Unmarshal(data, &m)
	}
	return m
}

// dialogResult is the outcome of a dialog submission.
type dialogResult struct {
	dialog *form.Dialog
	form   form.Form
	err    error
}

// submitDialog binds the request to the form of d and runs it through a dialog.
// Binding and permission errors are returned; submission errors are in the result.
func (s *Server) submitDialog(ctx echo.Context, d dialogDef) (dialogResult, error) {
	usr, err := mustContextUser(ctx)
	if err != nil {
		return dialogResult{}, err
	}
	if d.Control != "" && !screen.Allowed(usr.Role, d.Control) {
		return dialogResult{}, errHttpForbidden
	}

	f, err := form.New(d.Form)
	if err != nil {
		return dialogResult{}, err
	}
	if err = ctx.Bind(f); err != nil {
		return dialogResult{}, err
	}

	delay := s.Conf.Forms.SubmitDelay
	switch f := f.(type) {
	case *form.Payment:
		// a missing fee is reported by validation
		if f.FeeID != "" {
			fee, err := screen.FindFee(ctx.Request().Context(), s.Data, f.FeeID)
			if err != nil {
				return dialogResult{}, err
			}
			f.FeeTitle, f.Amount = fee.Title, fee.Amount
		}
		delay = s.Conf.Forms.PaymentDelay
	case *form.ChangePassword:
		f.User = usr
		f.Checker = s.Users
	}

	dlg := form.NewDialog(form.Deps{
		Validate:   s.Validate,
		Translator: s.Translator,
		Notifier:   getNotes(ctx),
		Delay:      delay,
	})
	dlg.Open()
	err = dlg.Submit(ctx.Request().Context(), f)

	outcome := metricsvc.OK
	if err != nil {
		outcome = metricsvc.Failed
		if _, ok := errors.Cause(err).(*core.ValidationError); ok {
			outcome = metricsvc.Invalid
		}
	}
	s.Metrics.Form(d.Form, outcome)
	return dialogResult{dialog: dlg, form: f, err: err}, nil
}

// dialogHandler serves the console submission of d: success goes back to the screen,
// anything else renders the screen again with the dialog open.
func (s *Server) dialogHandler(d dialogDef, render func(echo.Context, int, *dialogView) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		res, err := s.submitDialog(ctx, d)
		if err != nil {
			return err
		}
		if res.err == nil {
			return s.redirect(ctx, d.Screen)
		}

		code := http.StatusInternalServerError
		if _, ok := errors.Cause(res.err).(*core.ValidationError); ok {
			code = http.StatusBadRequest
		} else {
			s.Logger.Warn("form submission failed", res.err)
		}
		return render(ctx, code, newDialogView(d, res.dialog, res.form))
	}
}
