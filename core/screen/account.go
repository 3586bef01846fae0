package screen

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core/form"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/user"
)

type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProfileView shows the signed in account with its linked school record.
type ProfileView struct {
	User      user.User           `json:"user"`
	RoleLabel string              `json:"roleLabel"`
	Details   []Detail            `json:"details"`
	Profile   *form.UpdateProfile `json:"profile"`
}

func LoadProfile(ctx context.Context, svc school.Service, usr user.User) (ProfileView, error) {
	v := ProfileView{
		User:      usr,
		RoleLabel: usr.Role.Label(),
		Profile:   form.NewUpdateProfile(usr),
		Details:   []Detail{{Label: "Email", Value: usr.Email}, {Label: "Role", Value: usr.Role.Label()}},
	}
	if usr.LinkedID == "" {
		return v, nil
	}

	switch usr.Role {
	case user.RoleTeacher:
		t, err := svc.GetTeacherByID(ctx, usr.LinkedID)
		if err != nil {
			return v, ignoreNotFound(err, "getting teacher")
		}
		v.Details = append(v.Details,
			Detail{Label: "Subject", Value: t.SubjectTaught},
			Detail{Label: "Qualification", Value: t.Qualification},
			Detail{Label: "Hire Date", Value: t.HireDate},
			Detail{Label: "Phone", Value: t.PhoneNumber},
		)
	case user.RoleStudent:
		s, err := svc.GetStudentByID(ctx, usr.LinkedID)
		if err != nil {
			return v, ignoreNotFound(err, "getting student")
		}
		v.Details = append(v.Details,
			Detail{Label: "Student ID", Value: s.ID},
			Detail{Label: "Class", Value: s.ClassGrade},
			Detail{Label: "Enrolled", Value: s.EnrollmentDate},
		)
	case user.RoleParent:
		p, err := svc.GetParentByID(ctx, usr.LinkedID)
		if err != nil {
			return v, ignoreNotFound(err, "getting parent")
		}
		children, err := ownStudents(ctx, svc, usr)
		if err != nil {
			return v, err
		}
		v.Details = append(v.Details, Detail{Label: "Phone", Value: p.PhoneNumber}, Detail{Label: "Address", Value: p.Address})
		for _, c := range children {
			v.Details = append(v.Details, Detail{Label: "Child", Value: c.FullName() + " (" + c.ClassGrade + ")"})
		}
	}
	return v, nil
}

func ignoreNotFound(err error, msg string) error {
	if errors.Cause(err) == school.ErrNotFound {
		return nil
	}
	return errors.Wrap(err, msg)
}

// SettingsView holds the school settings; they reset to their defaults on every load.
type SettingsView struct {
	General       *form.GeneralSettings      `json:"general"`
	Notifications *form.NotificationSettings `json:"notifications"`
	Security      *form.SecuritySettings     `json:"security"`
	CanSave       bool                       `json:"canSave"`
}

func LoadSettings(role user.Role) SettingsView {
	return SettingsView{
		General:       form.DefaultGeneralSettings(),
		Notifications: form.DefaultNotificationSettings(),
		Security:      form.DefaultSecuritySettings(),
		CanSave:       Allowed(role, SaveSettings),
	}
}
