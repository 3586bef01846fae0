package form

import (
	"context"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/user"
)

type UpdateProfile struct {
	FirstName string `json:"firstName" form:"firstName" validate:"min=2"`
	LastName  string `json:"lastName" form:"lastName" validate:"min=2"`
	Email     string `json:"email" form:"email" validate:"email"`
}

// NewUpdateProfile prefills the profile form with usr.
func NewUpdateProfile(usr user.User) *UpdateProfile {
	return &UpdateProfile{FirstName: usr.FirstName, LastName: usr.LastName, Email: usr.Email}
}

func (f *UpdateProfile) Clean() {
	f.FirstName = core.CleanString(f.FirstName)
	f.LastName = core.CleanString(f.LastName)
	f.Email = core.CleanString(f.Email)
}

func (*UpdateProfile) Messages() map[string]string {
	return map[string]string{
		"firstName": "First name is required",
		"lastName":  "Last name is required",
		"email":     "Please enter a valid email",
	}
}

func (*UpdateProfile) Success() core.Notification {
	return core.Success("Profile Updated", "Your profile information has been saved.")
}

func (*UpdateProfile) Failure() core.Notification {
	return core.Failure("Error", "There was an error updating your profile. Please try again.")
}

// PasswordChecker verifies the current password of a user.
type PasswordChecker interface {
	CheckPassword(id, pwd string) bool
}

// ChangePassword applies the password policy of user.PasswordChange and checks the current password.
type ChangePassword struct {
	user.PasswordChange

	Checker PasswordChecker `json:"-" form:"-" validate:"-"`
}

func (*ChangePassword) Messages() map[string]string {
	return map[string]string{
		"currentPassword":         "Current password is required",
		"newPassword.required":    "New password is required",
		"confirmPassword.eqfield": "Passwords do not match",
	}
}

func (f *ChangePassword) Check(context.Context) []core.FieldError {
	if f.Checker != nil && !f.Checker.CheckPassword(f.User.ID, f.CurrentPassword) {
		return []core.FieldError{{Field: "currentPassword", Error: "Current password is incorrect"}}
	}
	return nil
}

func (*ChangePassword) Success() core.Notification {
	return core.Success("Password Updated", "Your password has been changed successfully.")
}

func (*ChangePassword) Failure() core.Notification {
	return core.Failure("Error", "There was an error changing your password. Please try again.")
}

type GeneralSettings struct {
	SchoolName   string `json:"schoolName" form:"schoolName" validate:"min=3"`
	AcademicYear string `json:"academicYear" form:"academicYear" validate:"academicyear"`
	Address      string `json:"address" form:"address" validate:"min=5"`
	Phone        string `json:"phone" form:"phone" validate:"min=7"`
	Email        string `json:"email" form:"email" validate:"email"`
}

func DefaultGeneralSettings() *GeneralSettings {
	return &GeneralSettings{
		SchoolName:   "Scholar Sync Academy",
		AcademicYear: "2024-2025",
		Address:      "123 Education Street, Knowledge City",
		Phone:        "+1 (555) 123-4567",
		Email:        "info@scholarsync.edu",
	}
}

func (f *GeneralSettings) Clean() {
	f.SchoolName = core.CleanString(f.SchoolName)
	f.AcademicYear = core.CleanString(f.AcademicYear)
	f.Address = core.CleanString(f.Address)
	f.Phone = core.CleanString(f.Phone)
	f.Email = core.CleanString(f.Email)
}

func (*GeneralSettings) Messages() map[string]string {
	return map[string]string{
		"schoolName":   "School name is required",
		"academicYear": "Academic year must look like 2024-2025",
		"address":      "Address is required",
		"phone":        "Phone number is required",
		"email":        "Please enter a valid email",
	}
}

func (*GeneralSettings) Success() core.Notification { return settingsSaved() }

func (*GeneralSettings) Failure() core.Notification { return settingsFailed() }

type NotificationSettings struct {
	EmailNotifications  bool `json:"emailNotifications" form:"emailNotifications"`
	SMSNotifications    bool `json:"smsNotifications" form:"smsNotifications"`
	AttendanceAlerts    bool `json:"attendanceAlerts" form:"attendanceAlerts"`
	GradeUpdates        bool `json:"gradeUpdates" form:"gradeUpdates"`
	SystemAnnouncements bool `json:"systemAnnouncements" form:"systemAnnouncements"`
	HomeworkReminders   bool `json:"homeworkReminders" form:"homeworkReminders"`
}

func DefaultNotificationSettings() *NotificationSettings {
	return &NotificationSettings{
		EmailNotifications:  true,
		AttendanceAlerts:    true,
		GradeUpdates:        true,
		SystemAnnouncements: true,
	}
}

func (*NotificationSettings) Messages() map[string]string { return nil }

func (*NotificationSettings) Success() core.Notification { return settingsSaved() }

func (*NotificationSettings) Failure() core.Notification { return settingsFailed() }

type SecuritySettings struct {
	TwoFactorAuth  bool   `json:"twoFactorAuth" form:"twoFactorAuth"`
	SessionTimeout string `json:"sessionTimeout" form:"sessionTimeout" validate:"min=1,digits"`
	PasswordExpiry string `json:"passwordExpiry" form:"passwordExpiry" validate:"min=1,digits"`
	LoginAttempts  string `json:"loginAttempts" form:"loginAttempts" validate:"min=1,digits"`
}

func DefaultSecuritySettings() *SecuritySettings {
	return &SecuritySettings{SessionTimeout: "30", PasswordExpiry: "90", LoginAttempts: "5"}
}

func (f *SecuritySettings) Clean() {
	f.SessionTimeout = core.CleanString(f.SessionTimeout)
	f.PasswordExpiry = core.CleanString(f.PasswordExpiry)
	f.LoginAttempts = core.CleanString(f.LoginAttempts)
}

func (*SecuritySettings) Messages() map[string]string {
	return map[string]string{
		"sessionTimeout": "Session timeout must be a number of minutes",
		"passwordExpiry": "Password expiry must be a number of days",
		"loginAttempts":  "Max login attempts must be a number",
	}
}

func (*SecuritySettings) Success() core.Notification { return settingsSaved() }

func (*SecuritySettings) Failure() core.Notification { return settingsFailed() }

func settingsSaved() core.Notification {
	return core.Success("Settings Saved", "Your settings have been updated successfully.")
}

func settingsFailed() core.Notification {
	return core.Failure("Error", "There was an error saving your settings. Please try again.")
}
