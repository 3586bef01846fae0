package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/route"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	metricsvc "github.com/trezcool/scholarsync/services/metrics"
)

// Credentials is the account table the console signs users in against.
type Credentials interface {
	user.Authenticator
	CheckPassword(id, pwd string) bool
}

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Users      Credentials
		Codec      session.Codec
		Data       school.Service
		Validate   *validator.Validate
		Translator ut.Translator
		Metrics    *metricsvc.Metrics
		// Notifier also receives every notification shown to users. Optional.
		Notifier core.Notifier
	}

	Server struct {
		ServerDeps
		app      *echo.Echo
		renderer *Renderer
		screens  map[string]loader
		now      func() time.Time // mockable
		shutdown chan os.Signal
		errors   chan error
	}
)

func NewServer(deps ServerDeps) *Server {
	if deps.Metrics == nil {
		deps.Metrics = metricsvc.NewMetrics()
	}
	s := &Server{
		ServerDeps: deps,
		app:        echo.New(),
		renderer:   NewRenderer(deps.Conf.AppName),
		now:        time.Now,
		shutdown:   make(chan os.Signal, 1),
		errors:     make(chan error, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.Renderer = s.renderer
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.Logger, s.renderer, s.signalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(s.metricsMiddleware)

	s.app.GET("/static/*", staticHandler())

	// HTML console
	web := s.app.Group("", s.sessionMiddleware(newCookieStorage))
	if conf.Server.CSRF {
		web.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "form:" + csrfField,
			CookieSecure:   conf.Server.SecureCookies,
			CookieHTTPOnly: true,
			CookiePath:     "/",
		}))
	}
	s.registerPages(web)

	// JSON API
	v1 := s.app.Group("/v1", s.sessionMiddleware(newHeaderStorage))
	s.registerAPI(v1)
}

// guard applies the route guard of screen path to the request.
func (s *Server) guard(path string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			store := getStore(ctx)
			d := route.Resolve(path, store.State(), store.Loading())
			switch d.Outcome {
			case route.Redirect:
				if isAPI(ctx) {
					return errUnauthorized
				}
				return s.redirect(ctx, d.Location)
			case route.Forbidden:
				return errHttpForbidden
			case route.NotFound:
				return errHttpNotFound
			case route.Loading:
				return errHttpUnavailable
			}
			return next(ctx)
		}
	}
}

func (s *Server) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if err := next(ctx); err != nil {
			ctx.Error(err) // commits the error response so its status is known
		}
		s.Metrics.Request(ctx.Request().Method, ctx.Response().Status)
		return nil
	}
}

func (s *Server) Start() {
	if err := s.app.Start(s.Conf.Server.Host); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
