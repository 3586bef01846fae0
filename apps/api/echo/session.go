package echoapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	metricsvc "github.com/trezcool/scholarsync/services/metrics"
	notifysvc "github.com/trezcool/scholarsync/services/notify"
)

const (
	contextStoreKey = "session"
	contextNotesKey = "notifications"
	flashCookie     = "flash"
)

// cookieStorage keeps the session token in a browser cookie.
type cookieStorage struct {
	ctx    echo.Context
	secure bool
	values map[string]*string // written during this request; nil means removed
}

var _ session.Storage = (*cookieStorage)(nil)

func newCookieStorage(ctx echo.Context, conf *core.Config) session.Storage {
	return &cookieStorage{ctx: ctx, secure: conf.Server.SecureCookies, values: make(map[string]*string)}
}

func (s *cookieStorage) Get(key string) (string, error) {
	if v, ok := s.values[key]; ok {
		if v == nil {
			return "", session.ErrNotFound
		}
		return *v, nil
	}
	c, err := s.ctx.Cookie(key)
	if err != nil || c.Value == "" {
		return "", session.ErrNotFound
	}
	return c.Value, nil
}

func (s *cookieStorage) Set(key, value string) error {
	s.values[key] = &value
	s.ctx.SetCookie(&http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *cookieStorage) Remove(key string) error {
	s.values[key] = nil
	s.ctx.SetCookie(&http.Cookie{Name: key, Path: "/", MaxAge: -1, HttpOnly: true, Secure: s.secure})
	return nil
}

// headerStorage reads the session token from the Authorization header of API requests.
// A token set during the request is only kept for that request; clients receive it in the body.
type headerStorage struct {
	token *string
}

var _ session.Storage = (*headerStorage)(nil)

func newHeaderStorage(ctx echo.Context, _ *core.Config) session.Storage {
	s := new(headerStorage)
	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if token != "" {
			s.token = &token
		}
	}
	return s
}

func (s *headerStorage) Get(key string) (string, error) {
	if key != session.TokenKey || s.token == nil {
		return "", session.ErrNotFound
	}
	return *s.token, nil
}

func (s *headerStorage) Set(key, value string) error {
	if key == session.TokenKey {
		s.token = &value
	}
	return nil
}

func (s *headerStorage) Remove(key string) error {
	if key == session.TokenKey {
		s.token = nil
	}
	return nil
}

// sessionMiddleware restores the session of every request from the storage built by newStorage.
// Notifications raised while serving the request are recorded for the response.
func (s *Server) sessionMiddleware(newStorage func(echo.Context, *core.Config) session.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			storage := newStorage(ctx, s.Conf)
			notes := notifysvc.NewRecorder(s.Notifier)
			store := session.NewStore(session.Deps{
				Users:      s.Users,
				Codec:      s.Codec,
				Storage:    storage,
				Notifier:   notes,
				TTL:        s.Conf.Session.TTL,
				LoginDelay: s.Conf.Session.LoginDelay,
			})
			store.NowFunc = s.now

			_, noToken := storage.Get(session.TokenKey)
			st, err := store.Restore(ctx.Request().Context())
			switch {
			case err != nil:
				s.Metrics.Restore(metricsvc.Failed)
				s.Logger.Info("session restore failed", err)
			case noToken == nil:
				s.Metrics.Restore(metricsvc.OK)
			}

			ctx.Set(contextStoreKey, store)
			ctx.Set(contextNotesKey, notes)
			if st.User != nil {
				ctx.Set(contextUserKey, *st.User)
			}
			return next(ctx)
		}
	}
}

const contextUserKey = "user"

func getStore(ctx echo.Context) *session.Store {
	store, _ := ctx.Get(contextStoreKey).(*session.Store)
	return store
}

func getNotes(ctx echo.Context) *notifysvc.Recorder {
	notes, _ := ctx.Get(contextNotesKey).(*notifysvc.Recorder)
	return notes
}

func contextUser(ctx echo.Context) (user.User, bool) {
	usr, ok := ctx.Get(contextUserKey).(user.User)
	return usr, ok
}

func mustContextUser(ctx echo.Context) (user.User, error) {
	if usr, ok := contextUser(ctx); ok {
		return usr, nil
	}
	return user.User{}, errUnauthorized
}

// Flash notifications survive one redirect in a cookie.

func setFlash(ctx echo.Context, notes []core.Notification) {
	if len(notes) == 0 {
		return
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return
	}
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(ctx echo.Context) []core.Notification {
	c, err := ctx.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	ctx.SetCookie(&http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, HttpOnly: true})

	var notes []core.Notification
	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err == nil {
		err = json.Unmarshal(data, &notes)
	}
	if err != nil {
		return nil
	}
	return notes
}

// redirect sends the user to location with the request's notifications as flash.
func (s *Server) redirect(ctx echo.Context, location string) error {
	if notes := getNotes(ctx); notes != nil {
		setFlash(ctx, notes.Drain())
	}
	return ctx.Redirect(http.StatusSeeOther, location)
}
