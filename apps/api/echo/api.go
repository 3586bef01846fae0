package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/route"
	"github.com/trezcool/scholarsync/core/screen"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	metricsvc "github.com/trezcool/scholarsync/services/metrics"
)

type (
	sessionResponse struct {
		session.State
		Token         string              `json:"token,omitempty"`
		Notifications []core.Notification `json:"notifications"`
	}

	decisionResponse struct {
		Outcome  string `json:"outcome"`
		Location string `json:"location,omitempty"`
		Title    string `json:"title,omitempty"`
	}

	notificationsResponse struct {
		Notifications []core.Notification `json:"notifications"`
	}
)

var outcomeNames = map[route.Outcome]string{
	route.Render:    "render",
	route.Redirect:  "redirect",
	route.Loading:   "loading",
	route.NotFound:  "not-found",
	route.Forbidden: "forbidden",
}

// registerAPI serves the screens as JSON under /v1; clients authenticate with a bearer token.
func (s *Server) registerAPI(g *echo.Group) {
	g.POST("/auth/login", s.apiLogin)
	g.GET("/auth/session", s.apiSession)
	g.POST("/auth/logout", s.apiLogout)
	g.GET("/routes/resolve", s.apiResolve)
	g.GET("/header", s.apiHeader)

	for path := range s.screens {
		g.GET(path, s.apiScreen(path), s.guard(path))
	}
	g.POST("/forms/:form", s.apiSubmit)
}

func drain(ctx echo.Context) []core.Notification {
	notes := getNotes(ctx).Drain()
	if notes == nil {
		notes = []core.Notification{}
	}
	return notes
}

func (s *Server) apiLogin(ctx echo.Context) error {
	var in credentials
	if err := ctx.Bind(&in); err != nil {
		return err
	}
	store := getStore(ctx)
	if _, err := store.Login(ctx.Request().Context(), in.Email, in.Password); err != nil {
		s.Metrics.Login(metricsvc.Failed)
		return err
	}
	s.Metrics.Login(metricsvc.OK)
	st := store.State()
	return ctx.JSON(http.StatusOK, sessionResponse{State: st, Token: st.Token, Notifications: drain(ctx)})
}

func (s *Server) apiSession(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, sessionResponse{State: getStore(ctx).State(), Notifications: drain(ctx)})
}

func (s *Server) apiLogout(ctx echo.Context) error {
	if err := getStore(ctx).Logout(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notificationsResponse{Notifications: drain(ctx)})
}

// apiResolve tells a client what the guard does with a navigation to ?path.
func (s *Server) apiResolve(ctx echo.Context) error {
	store := getStore(ctx)
	d := route.Resolve(ctx.QueryParam("path"), store.State(), store.Loading())
	return ctx.JSON(http.StatusOK, decisionResponse{
		Outcome:  outcomeNames[d.Outcome],
		Location: d.Location,
		Title:    d.Route.Title,
	})
}

func (s *Server) apiHeader(ctx echo.Context) error {
	usr, err := mustContextUser(ctx)
	if err != nil {
		return err
	}
	h := screen.NewHeader(usr, ctx.QueryParam("active"), s.now())
	return ctx.JSON(http.StatusOK, newHeaderResponse(h))
}

type headerResponse struct {
	User      user.User `json:"user"`
	RoleLabel string    `json:"roleLabel"`
	Greeting  string    `json:"greeting"`
	Nav       []navItem `json:"nav"`
	Active    string    `json:"active,omitempty"`
}

type navItem struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

func newHeaderResponse(h screen.Header) headerResponse {
	res := headerResponse{User: h.User, RoleLabel: h.RoleLabel, Greeting: h.Greeting, Active: h.Active}
	for _, r := range h.Nav {
		res.Nav = append(res.Nav, navItem{Path: r.Path, Title: r.Title})
	}
	return res
}

func (s *Server) apiScreen(path string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		usr, err := mustContextUser(ctx)
		if err != nil {
			return err
		}
		data, err := s.screens[path](ctx, usr)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, data)
	}
}

// apiSubmit runs a form dialog; field errors come back as a 400 with a field -> message map.
func (s *Server) apiSubmit(ctx echo.Context) error {
	d, ok := lookupDialog(ctx.Param("form"))
	if !ok {
		return errHttpNotFound
	}
	submit := func(ctx echo.Context) error {
		res, err := s.submitDialog(ctx, d)
		if err != nil {
			return err
		}
		if res.err != nil {
			return res.err
		}
		return ctx.JSON(http.StatusOK, notificationsResponse{Notifications: drain(ctx)})
	}
	return s.guard(d.Screen)(submit)(ctx)
}
