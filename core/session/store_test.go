package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	"github.com/trezcool/scholarsync/storage/kv"
	"github.com/trezcool/scholarsync/tests"
)

var now = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func newStore(t *testing.T, storage session.Storage, notes *testutil.Notifications) *session.Store {
	store := session.NewStore(session.Deps{
		Users:    testutil.NewCredentials(t),
		Codec:    session.MockCodec{},
		Storage:  storage,
		Notifier: notes,
		TTL:      time.Hour,
	})
	store.NowFunc = func() time.Time { return now }
	return store
}

func TestStore_Login(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		pwd       string
		wantRole  user.Role
		wantErr   error
		wantNote  core.Notification
		wantToken bool
	}{
		{
			name: "admin", email: "admin@scholarsync.com", pwd: "admin123", wantRole: user.RoleAdmin, wantToken: true,
			wantNote: core.Success("Login Successful", "Welcome back, Admin!"),
		},
		{
			name: "teacher", email: "teacher@scholarsync.com", pwd: "teacher123", wantRole: user.RoleTeacher, wantToken: true,
			wantNote: core.Success("Login Successful", "Welcome back, Teacher!"),
		},
		{
			name: "student", email: "student@scholarsync.com", pwd: "student123", wantRole: user.RoleStudent, wantToken: true,
			wantNote: core.Success("Login Successful", "Welcome back, Student!"),
		},
		{
			name: "parent", email: "parent@scholarsync.com", pwd: "parent123", wantRole: user.RoleParent, wantToken: true,
			wantNote: core.Success("Login Successful", "Welcome back, Parent!"),
		},
		{
			name: "wrong password", email: "admin@scholarsync.com", pwd: "nope", wantErr: user.ErrInvalidCredentials,
			wantNote: core.Failure("Login Failed", "Invalid email or password"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := kv.NewMemoryStorage()
			notes := new(testutil.Notifications)
			store := newStore(t, storage, notes)

			usr, err := store.Login(context.Background(), tt.email, tt.pwd)
			assert.Equal(t, tt.wantErr, errors.Cause(err))
			assert.Equal(t, tt.wantNote, notes.Last())

			st := store.State()
			token, getErr := storage.Get(session.TokenKey)
			if !tt.wantToken {
				assert.False(t, st.IsAuthenticated)
				assert.Nil(t, st.User)
				assert.Equal(t, session.ErrNotFound, getErr)
				return
			}

			assert.Equal(t, tt.wantRole, usr.Role)
			assert.True(t, st.IsAuthenticated)
			if assert.NotNil(t, st.User) {
				assert.Equal(t, usr, *st.User)
			}
			assert.NoError(t, getErr)
			assert.Equal(t, st.Token, token)

			p, err := session.MockCodec{}.Decode(token)
			if assert.NoError(t, err) {
				assert.Equal(t, usr.ID, p.ID)
				assert.Equal(t, usr.Email, p.Email)
				assert.Equal(t, core.NowMillis(now.Add(time.Hour)), p.Exp)
			}
		})
	}
}

func TestStore_LoginCancelled(t *testing.T) {
	notes := new(testutil.Notifications)
	store := session.NewStore(session.Deps{
		Users:      testutil.NewCredentials(t),
		Storage:    kv.NewMemoryStorage(),
		Notifier:   notes,
		LoginDelay: time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Login(ctx, "admin@scholarsync.com", "admin123")
	assert.Equal(t, context.Canceled, err)
	assert.Empty(t, notes.List)
	assert.False(t, store.State().IsAuthenticated)
}

func TestStore_Restore(t *testing.T) {
	codec := session.MockCodec{}
	encode := func(p session.Payload) string {
		token, err := codec.Encode(p)
		if err != nil {
			t.Fatalf("Encode() failed: %v", err)
		}
		return token
	}
	valid := session.Payload{ID: "3", Email: "student@scholarsync.com", Role: user.RoleStudent, Exp: core.NowMillis(now.Add(time.Minute))}
	expired := valid
	expired.Exp = core.NowMillis(now.Add(-time.Millisecond))
	unknown := valid
	unknown.ID = "99"

	tests := []struct {
		name     string
		token    string
		wantAuth bool
		wantErr  error
	}{
		{name: "no token"},
		{name: "valid", token: encode(valid), wantAuth: true},
		{name: "malformed", token: "not-a-token", wantErr: session.ErrTokenMalformed},
		{name: "expired", token: encode(expired), wantErr: session.ErrTokenExpired},
		{name: "unknown user", token: encode(unknown), wantErr: session.ErrUnknownUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := kv.NewMemoryStorage()
			if tt.token != "" {
				_ = storage.Set(session.TokenKey, tt.token)
			}
			notes := new(testutil.Notifications)
			store := newStore(t, storage, notes)
			assert.True(t, store.Loading())

			st, err := store.Restore(context.Background())
			assert.False(t, store.Loading())
			assert.Equal(t, tt.wantErr, errors.Cause(err))
			assert.Equal(t, tt.wantAuth, st.IsAuthenticated)
			assert.Equal(t, st, store.State())

			_, getErr := storage.Get(session.TokenKey)
			switch {
			case tt.wantAuth:
				assert.Equal(t, "3", st.User.ID)
				assert.NoError(t, getErr)
				assert.Empty(t, notes.List)
			case tt.wantErr != nil:
				assert.Equal(t, session.ErrNotFound, getErr)
				assert.Equal(t, []core.Notification{
					core.Failure("Authentication Error", "Your session has expired. Please log in again."),
				}, notes.List)
			default:
				assert.Empty(t, notes.List)
			}
		})
	}
}

func TestStore_ExpiryOnlyCheckedOnRestore(t *testing.T) {
	storage := kv.NewMemoryStorage()
	store := newStore(t, storage, new(testutil.Notifications))
	if _, err := store.Login(context.Background(), "parent@scholarsync.com", "parent123"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	// time passes beyond expiry: the live session stays authenticated
	store.NowFunc = func() time.Time { return now.Add(2 * time.Hour) }
	assert.True(t, store.State().IsAuthenticated)

	// a reload drops it
	_, err := store.Restore(context.Background())
	assert.Equal(t, session.ErrTokenExpired, errors.Cause(err))
	assert.False(t, store.State().IsAuthenticated)
}

func TestStore_Logout(t *testing.T) {
	storage := kv.NewMemoryStorage()
	notes := new(testutil.Notifications)
	store := newStore(t, storage, notes)
	if _, err := store.Login(context.Background(), "teacher@scholarsync.com", "teacher123"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	assert.NoError(t, store.Logout())
	assert.False(t, store.State().IsAuthenticated)
	assert.Nil(t, store.State().User)
	_, err := storage.Get(session.TokenKey)
	assert.Equal(t, session.ErrNotFound, err)
	assert.Equal(t, core.Success("Logged Out", "You have been successfully logged out."), notes.Last())

	// a reload after logout stays anonymous
	st, err := store.Restore(context.Background())
	assert.NoError(t, err)
	assert.False(t, st.IsAuthenticated)
}
