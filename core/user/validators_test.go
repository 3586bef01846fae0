package user_test

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/user"
	"github.com/trezcool/scholarsync/tests"
)

func TestPasswordChange_Policy(t *testing.T) {
	validate := validator.New()
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	user.LoadCommonPasswords(testutil.NopLogger{})

	usr := user.User{ID: "1", FirstName: "Admin", LastName: "User", Email: "admin@scholarsync.com"}

	tests := []struct {
		name    string
		pwd     string
		confirm string
		wantErr map[string]string
	}{
		{
			name:    "too short",
			pwd:     "Ab1!",
			wantErr: map[string]string{"newPassword": "password must contain at least 8 characters"},
		},
		{
			name:    "whitespace",
			pwd:     "Abcd 123!",
			wantErr: map[string]string{"newPassword": "password must not contain whitespace"},
		},
		{
			name:    "all numeric",
			pwd:     "1234567890",
			wantErr: map[string]string{"newPassword": "password cannot be entirely numeric"},
		},
		{
			name:    "not complex",
			pwd:     "abcdefgh1",
			wantErr: map[string]string{"newPassword": "password must contain at least 1 uppercase character, 1 lowercase character, 1 digit and 1 special character"},
		},
		{
			name:    "similar to name",
			pwd:     "Admin@User1",
			wantErr: map[string]string{"newPassword": "password cannot be similar to user attributes"},
		},
		{
			name:    "common",
			pwd:     "P@ssw0rd",
			wantErr: map[string]string{"newPassword": "password is too common"},
		},
		{
			name:    "confirmation mismatch",
			pwd:     "Zebra#Quilt42",
			confirm: "Zebra#Quilt43",
			wantErr: map[string]string{"confirmPassword": "confirmPassword must be equal to NewPassword"},
		},
		{
			name: "valid",
			pwd:  "Zebra#Quilt42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirm := tt.confirm
			if confirm == "" {
				confirm = tt.pwd
			}
			pc := user.PasswordChange{CurrentPassword: "admin123", NewPassword: tt.pwd, ConfirmPassword: confirm, User: usr}
			err := core.ValidateStruct(validate, translator, pc, nil)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			if vErr, ok := err.(*core.ValidationError); assert.True(t, ok) {
				assert.Equal(t, tt.wantErr, vErr.FieldMap())
			}
		})
	}
}
