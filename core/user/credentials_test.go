package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTable(t *testing.T) *CredentialTable {
	tbl, err := NewCredentialTable(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewCredentialTable() failed: %v", err)
	}
	return tbl
}

func TestCredentialTable_Authenticate(t *testing.T) {
	tbl := newTable(t)

	tests := []struct {
		name     string
		email    string
		pwd      string
		wantRole Role
		wantErr  error
	}{
		{name: "admin", email: "admin@scholarsync.com", pwd: "admin123", wantRole: RoleAdmin},
		{name: "teacher", email: "teacher@scholarsync.com", pwd: "teacher123", wantRole: RoleTeacher},
		{name: "student", email: "student@scholarsync.com", pwd: "student123", wantRole: RoleStudent},
		{name: "parent", email: "parent@scholarsync.com", pwd: "parent123", wantRole: RoleParent},
		{name: "wrong password", email: "admin@scholarsync.com", pwd: "teacher123", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@scholarsync.com", pwd: "admin123", wantErr: ErrInvalidCredentials},
		{name: "email match is exact", email: "Admin@scholarsync.com", pwd: "admin123", wantErr: ErrInvalidCredentials},
		{name: "no trimming", email: " admin@scholarsync.com", pwd: "admin123", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := tbl.Authenticate(tt.email, tt.pwd)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Equal(t, User{}, usr)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tt.wantRole, usr.Role)
				assert.Equal(t, tt.email, usr.Email)
			}
		})
	}
}

func TestCredentialTable_GetByID(t *testing.T) {
	tbl := newTable(t)

	usr, err := tbl.GetByID("2")
	if assert.NoError(t, err) {
		assert.Equal(t, "Teacher", usr.FirstName)
		assert.Equal(t, "T1001", usr.LinkedID)
		assert.Equal(t, "https://ui-avatars.com/api/?name=Teacher+User&background=3B82F6&color=fff", usr.Avatar)
	}

	_, err = tbl.GetByID("42")
	assert.Equal(t, ErrNotFound, err)

	assert.True(t, tbl.CheckPassword("4", "parent123"))
	assert.False(t, tbl.CheckPassword("4", "admin123"))
	assert.Len(t, tbl.Users(), 4)
}

func TestRole(t *testing.T) {
	assert.Equal(t, RoleParent, ParseRole(" Parent "))
	assert.Equal(t, RoleStudent, ParseRole("janitor"))
	assert.Equal(t, "Administrator", RoleAdmin.Label())
	assert.Equal(t, "Student", Role("janitor").Label())
	assert.True(t, RoleTeacher.In(RoleAdmin, RoleTeacher))
	assert.False(t, RoleParent.In(RoleAdmin, RoleTeacher))
}
