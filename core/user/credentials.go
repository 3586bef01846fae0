package user

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type (
	// Account is one entry of the credential table.
	Account struct {
		User
		PasswordHash []byte `json:"-"`
	}

	// Authenticator checks credentials and resolves users by ID.
	Authenticator interface {
		Authenticate(email, pwd string) (User, error)
		GetByID(id string) (User, error)
	}

	// CredentialTable is a fixed, read-only set of accounts.
	CredentialTable struct {
		mu       sync.RWMutex
		accounts []Account
	}
)

var _ Authenticator = (*CredentialTable)(nil)

// Seed is a plain-text account definition, hashed when building the table.
type Seed struct {
	User     User
	Password string
}

// DefaultSeeds returns the demo accounts, one per role.
func DefaultSeeds() []Seed {
	return []Seed{
		{
			User: User{
				ID: "1", FirstName: "Admin", LastName: "User", Email: "admin@scholarsync.com", Role: RoleAdmin,
				Avatar: AvatarURL("Admin User", "1E40AF"),
			},
			Password: "admin123",
		},
		{
			User: User{
				ID: "2", FirstName: "Teacher", LastName: "User", Email: "teacher@scholarsync.com", Role: RoleTeacher,
				Avatar: AvatarURL("Teacher User", "3B82F6"), LinkedID: "T1001",
			},
			Password: "teacher123",
		},
		{
			User: User{
				ID: "3", FirstName: "Student", LastName: "User", Email: "student@scholarsync.com", Role: RoleStudent,
				Avatar: AvatarURL("Student User", "60A5FA"), LinkedID: "S1001",
			},
			Password: "student123",
		},
		{
			User: User{
				ID: "4", FirstName: "Parent", LastName: "User", Email: "parent@scholarsync.com", Role: RoleParent,
				Avatar: AvatarURL("Parent User", "93C5FD"), LinkedID: "P1001",
			},
			Password: "parent123",
		},
	}
}

// NewCredentialTable hashes the seeds' passwords with the given bcrypt cost.
func NewCredentialTable(cost int, seeds ...Seed) (*CredentialTable, error) {
	if len(seeds) == 0 {
		seeds = DefaultSeeds()
	}
	tbl := &CredentialTable{accounts: make([]Account, 0, len(seeds))}
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), cost)
		if err != nil {
			return nil, errors.Wrapf(err, "hashing password of %q", s.User.Email)
		}
		tbl.accounts = append(tbl.accounts, Account{User: s.User, PasswordHash: hash})
	}
	return tbl, nil
}

// Authenticate returns the user whose email matches exactly and whose password matches.
func (t *CredentialTable) Authenticate(email, pwd string) (User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, acc := range t.accounts {
		if acc.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(pwd)); err != nil {
			return User{}, ErrInvalidCredentials
		}
		return acc.User, nil
	}
	return User{}, ErrInvalidCredentials
}

func (t *CredentialTable) GetByID(id string) (User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, acc := range t.accounts {
		if acc.ID == id {
			return acc.User, nil
		}
	}
	return User{}, ErrNotFound
}

// CheckPassword reports whether pwd is the password of the user identified by id.
func (t *CredentialTable) CheckPassword(id, pwd string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, acc := range t.accounts {
		if acc.ID == id {
			return bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(pwd)) == nil
		}
	}
	return false
}

func (t *CredentialTable) Users() []User {
	t.mu.RLock()
	defer t.mu.RUnlock()

	usrs := make([]User, 0, len(t.accounts))
	for _, acc := range t.accounts {
		usrs = append(usrs, acc.User)
	}
	return usrs
}
