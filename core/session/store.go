package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/user"
)

var (
	msgLoginSuccess = "Login Successful"
	msgLoginFailed  = "Login Failed"
	msgAuthError    = "Authentication Error"
	msgLoggedOut    = "Logged Out"

	descInvalidCredentials = "Invalid email or password"
	descSessionExpired     = "Your session has expired. Please log in again."
	descLoggedOut          = "You have been successfully logged out."
)

type (
	// State is the authentication state visible to screens.
	State struct {
		IsAuthenticated bool       `json:"isAuthenticated"`
		User            *user.User `json:"user"`
		Token           string     `json:"-"`
	}

	Deps struct {
		Users      user.Authenticator
		Codec      Codec
		Storage    Storage
		Notifier   core.Notifier
		TTL        time.Duration
		LoginDelay time.Duration
	}

	// Store owns the authentication state and keeps the token in Storage.
	Store struct {
		deps    Deps
		NowFunc func() time.Time // mockable

		mu      sync.RWMutex
		state   State
		loading bool
	}
)

// NewStore returns a Store in the loading state; call Restore before reading State.
func NewStore(deps Deps) *Store {
	if deps.Codec == nil {
		deps.Codec = MockCodec{}
	}
	if deps.TTL <= 0 {
		deps.TTL = core.DefaultSessionTTL
	}
	if deps.Notifier == nil {
		deps.Notifier = core.NotifierFunc(func(core.Notification) {})
	}
	return &Store{deps: deps, NowFunc: time.Now, loading: true}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether the initial restore has not completed yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Restore reads the stored token and rebuilds the state from it.
// A missing token yields an unauthenticated state and no error. A malformed or expired token, or one
// naming an unknown user, is removed from storage and reported with a notification; the returned
// error says which check failed.
func (s *Store) Restore(ctx context.Context) (State, error) {
	defer s.setLoading(false)

	token, err := s.deps.Storage.Get(TokenKey)
	if err != nil {
		s.setState(State{})
		if errors.Cause(err) == ErrNotFound {
			return State{}, nil
		}
		return State{}, errors.Wrap(err, "reading token")
	}
	if err = ctx.Err(); err != nil {
		return State{}, err
	}

	usr, err := s.resolve(token)
	if err != nil {
		if rmErr := s.deps.Storage.Remove(TokenKey); rmErr != nil {
			err = errors.Wrapf(err, "removing token: %v", rmErr)
		}
		s.setState(State{})
		s.deps.Notifier.Notify(core.Failure(msgAuthError, descSessionExpired))
		return State{}, err
	}

	st := State{IsAuthenticated: true, User: &usr, Token: token}
	s.setState(st)
	return st, nil
}

func (s *Store) resolve(token string) (user.User, error) {
	p, err := s.deps.Codec.Decode(token)
	if err != nil {
		return user.User{}, err
	}
	if p.Exp < core.NowMillis(s.NowFunc()) {
		return user.User{}, ErrTokenExpired
	}
	usr, err := s.deps.Users.GetByID(p.ID)
	if err != nil {
		return user.User{}, errors.Wrap(ErrUnknownUser, err.Error())
	}
	return usr, nil
}

// Login waits the simulated network delay, then checks the credentials.
// On success the token is persisted and the state becomes authenticated; on failure the state is left as is.
func (s *Store) Login(ctx context.Context, email, pwd string) (user.User, error) {
	if err := core.Delay(ctx, s.deps.LoginDelay); err != nil {
		return user.User{}, err
	}

	usr, err := s.deps.Users.Authenticate(email, pwd)
	if err != nil {
		desc := descInvalidCredentials
		if errors.Cause(err) != user.ErrInvalidCredentials {
			desc = err.Error()
		}
		s.deps.Notifier.Notify(core.Failure(msgLoginFailed, desc))
		return user.User{}, err
	}

	token, err := s.deps.Codec.Encode(Payload{
		ID:    usr.ID,
		Email: usr.Email,
		Role:  usr.Role,
		Exp:   core.NowMillis(s.NowFunc().Add(s.deps.TTL)),
	})
	if err == nil {
		err = s.deps.Storage.Set(TokenKey, token)
	}
	if err != nil {
		s.deps.Notifier.Notify(core.Failure(msgLoginFailed, err.Error()))
		return user.User{}, errors.Wrap(err, "storing token")
	}

	s.setState(State{IsAuthenticated: true, User: &usr, Token: token})
	s.deps.Notifier.Notify(core.Success(msgLoginSuccess, fmt.Sprintf("Welcome back, %s!", usr.FirstName)))
	return usr, nil
}

// Logout removes the token and resets the state.
func (s *Store) Logout() error {
	err := s.deps.Storage.Remove(TokenKey)
	s.setState(State{})
	s.deps.Notifier.Notify(core.Success(msgLoggedOut, descLoggedOut))
	return errors.Wrap(err, "removing token")
}

func (s *Store) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Store) setLoading(l bool) {
	s.mu.Lock()
	s.loading = l
	s.mu.Unlock()
}
