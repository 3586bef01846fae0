package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/form"
	"github.com/trezcool/scholarsync/core/route"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/screen"
	"github.com/trezcool/scholarsync/core/user"
	metricsvc "github.com/trezcool/scholarsync/services/metrics"
)

const (
	csrfField   = "_csrf"
	receiptSize = 256
)

// page is the data of every console template.
type page struct {
	AppName string
	Title   string
	Header  *screen.Header
	Notes   []core.Notification
	CSRF    string
	Data    interface{}
	Dialogs map[string]*dialogView
}

// loader builds the data of a screen from the request.
type loader func(ctx echo.Context, usr user.User) (interface{}, error)

func (s *Server) registerPages(g *echo.Group) {
	s.screens = map[string]loader{
		route.PathDashboard: s.loadDashboard,
		route.PathStudents: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return screen.LoadStudents(ctx.Request().Context(), s.Data, usr.Role, ctx.FormValue("search"))
		},
		route.PathTeachers: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return screen.LoadTeachers(ctx.Request().Context(), s.Data, usr.Role, ctx.FormValue("search"))
		},
		route.PathClasses: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return screen.LoadClasses(ctx.Request().Context(), s.Data, usr.Role, ctx.FormValue("search"))
		},
		route.PathSubjects: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return screen.LoadSubjects(ctx.Request().Context(), s.Data, usr.Role, ctx.FormValue("search"))
		},
		route.PathAttendance: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return s.loadAttendance(ctx, usr)
		},
		route.PathTimetable: s.loadTimetable,
		route.PathLibrary: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return s.loadLibrary(ctx, usr)
		},
		route.PathFees: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return s.loadFees(ctx, usr)
		},
		route.PathProfile: func(ctx echo.Context, usr user.User) (interface{}, error) {
			return screen.LoadProfile(ctx.Request().Context(), s.Data, usr)
		},
		route.PathSettings: func(_ echo.Context, usr user.User) (interface{}, error) {
			return screen.LoadSettings(usr.Role), nil
		},
	}

	g.GET(route.PathRoot, s.home, s.guard(route.PathRoot))
	g.GET(route.PathLogin, s.loginPage, s.guard(route.PathLogin))
	g.POST(route.PathLogin, s.login, s.guard(route.PathLogin))
	g.POST("/logout", s.logout)

	for path := range s.screens {
		g.GET(path, s.screenHandler(path), s.guard(path))
	}
	for _, d := range dialogs {
		g.POST(d.Action, s.dialogHandler(d, s.screenRenderer(d.Screen)), s.guard(d.Screen))
	}

	g.POST("/attendance/toggle", s.toggleAttendance, s.guard(route.PathAttendance))
	g.POST("/attendance/save", s.saveAttendance, s.guard(route.PathAttendance))
	g.POST("/fees/mark-paid", s.markFeePaid, s.guard(route.PathFees))
	g.GET("/fees/payments/:id/receipt.png", s.feeReceipt, s.guard(route.PathFees))
	g.POST("/library/borrow", s.borrowBook, s.guard(route.PathLibrary))
	g.POST("/library/reserve", s.reserveBook, s.guard(route.PathLibrary))
}

// Rendering

func (s *Server) newPage(ctx echo.Context, title string) page {
	p := page{AppName: s.Conf.AppName, Title: title, Notes: popFlash(ctx)}
	if usr, ok := contextUser(ctx); ok {
		h := screen.NewHeader(usr, ctx.Path(), s.now())
		p.Header = &h
	}
	if token, ok := ctx.Get(middleware.DefaultCSRFConfig.ContextKey).(string); ok {
		p.CSRF = token
	}
	return p
}

// renderScreen renders the screen of path with data; open is the dialog left open by a failed submission.
func (s *Server) renderScreen(ctx echo.Context, path string, code int, data interface{}, open *dialogView) error {
	usr, err := mustContextUser(ctx)
	if err != nil {
		return err
	}
	r, _ := route.Lookup(path)
	p := s.newPage(ctx, r.Title)
	if p.Header != nil {
		p.Header.Active = path
	}
	p.Data = data

	p.Dialogs = make(map[string]*dialogView)
	for _, d := range screenDialogs(path, usr.Role) {
		var v *dialogView
		if open != nil && open.Form == d.Form {
			v = open
		} else {
			dlg := form.NewDialog(form.Deps{})
			if d.Inline || ctx.QueryParam("dialog") == d.Form {
				dlg.Open()
			}
			v = newDialogView(d, dlg, prefill(ctx, d.Form, usr))
		}
		v.CSRF = p.CSRF
		p.Dialogs[d.Form] = v
	}

	if notes := getNotes(ctx); notes != nil {
		p.Notes = append(p.Notes, notes.Drain()...)
	}
	return ctx.Render(code, strings.TrimPrefix(path, "/"), p)
}

// screenRenderer loads the screen of path and renders it with a dialog open.
func (s *Server) screenRenderer(path string) func(echo.Context, int, *dialogView) error {
	return func(ctx echo.Context, code int, open *dialogView) error {
		usr, err := mustContextUser(ctx)
		if err != nil {
			return err
		}
		data, err := s.screens[path](ctx, usr)
		if err != nil {
			return err
		}
		return s.renderScreen(ctx, path, code, data, open)
	}
}

func (s *Server) screenHandler(path string) echo.HandlerFunc {
	render := s.screenRenderer(path)
	return func(ctx echo.Context) error {
		return render(ctx, http.StatusOK, nil)
	}
}

// prefill returns the initial values of a dialog.
func prefill(ctx echo.Context, name string, usr user.User) form.Form {
	switch name {
	case form.ProfileForm:
		return form.NewUpdateProfile(usr)
	case form.GeneralForm:
		return form.DefaultGeneralSettings()
	case form.NotificationsForm:
		return form.DefaultNotificationSettings()
	case form.SecurityForm:
		return form.DefaultSecuritySettings()
	case form.PaymentForm:
		return &form.Payment{FeeID: ctx.QueryParam("fee")}
	}
	return nil
}

// Session

func (s *Server) home(ctx echo.Context) error {
	return s.redirect(ctx, route.PathDashboard)
}

type loginData struct {
	Email string
}

func (s *Server) renderLogin(ctx echo.Context, code int, email string) error {
	p := s.newPage(ctx, "Login")
	p.Data = loginData{Email: email}
	if notes := getNotes(ctx); notes != nil {
		p.Notes = append(p.Notes, notes.Drain()...)
	}
	return ctx.Render(code, "login", p)
}

func (s *Server) loginPage(ctx echo.Context) error {
	return s.renderLogin(ctx, http.StatusOK, "")
}

type credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (s *Server) login(ctx echo.Context) error {
	var in credentials
	if err := ctx.Bind(&in); err != nil {
		return err
	}
	if _, err := getStore(ctx).Login(ctx.Request().Context(), in.Email, in.Password); err != nil {
		s.Metrics.Login(metricsvc.Failed)
		if errors.Cause(err) == user.ErrInvalidCredentials {
			return s.renderLogin(ctx, http.StatusUnauthorized, in.Email)
		}
		return err
	}
	s.Metrics.Login(metricsvc.OK)
	return s.redirect(ctx, route.PathDashboard)
}

func (s *Server) logout(ctx echo.Context) error {
	if err := getStore(ctx).Logout(); err != nil {
		return err
	}
	return s.redirect(ctx, route.PathLogin)
}

// Screens

func (s *Server) loadDashboard(ctx echo.Context, usr user.User) (interface{}, error) {
	return screen.LoadDashboard(ctx.Request().Context(), s.Data, usr, s.now())
}

type timetableData struct {
	screen.TimetableGrid
	Slots []screen.Slot `json:"slots"`
}

func (s *Server) loadTimetable(ctx echo.Context, usr user.User) (interface{}, error) {
	grid, err := screen.LoadTimetable(ctx.Request().Context(), s.Data, usr, ctx.FormValue("class"))
	if err != nil {
		return nil, err
	}
	return timetableData{TimetableGrid: grid, Slots: grid.Slots()}, nil
}

// loadAttendance loads the register and applies the marks carried by the request, as "mark.<student id>" values.
func (s *Server) loadAttendance(ctx echo.Context, usr user.User) (screen.AttendanceView, error) {
	date := ctx.FormValue("date")
	if date == "" {
		date = s.now().Format(core.DateLayout)
	}
	view, err := screen.LoadAttendance(ctx.Request().Context(), s.Data, usr, ctx.FormValue("class"), date)
	if err != nil || view.Sheet == nil {
		return view, err
	}

	params, err := ctx.FormParams()
	if err != nil {
		return view, err
	}
	marks := make(map[string]school.AttendanceStatus)
	for key, vals := range params {
		if id := strings.TrimPrefix(key, "mark."); id != key && len(vals) > 0 {
			marks[id] = school.AttendanceStatus(vals[0])
		}
	}
	view.Sheet.Apply(marks)
	return view, nil
}

func (s *Server) toggleAttendance(ctx echo.Context) error {
	usr, err := s.requireControl(ctx, screen.TakeAttendance)
	if err != nil {
		return err
	}
	view, err := s.loadAttendance(ctx, usr)
	if err != nil {
		return err
	}
	if view.Sheet == nil {
		return errHttpNotFound
	}
	view.Sheet.Toggle(ctx.FormValue("student"))
	return s.renderScreen(ctx, route.PathAttendance, http.StatusOK, view, nil)
}

func (s *Server) saveAttendance(ctx echo.Context) error {
	usr, err := s.requireControl(ctx, screen.TakeAttendance)
	if err != nil {
		return err
	}
	view, err := s.loadAttendance(ctx, usr)
	if err != nil {
		return err
	}
	if view.Sheet == nil {
		return errHttpNotFound
	}
	n, err := view.Sheet.Save(ctx.Request().Context(), s.Conf.Forms.AttendanceDelay)
	getNotes(ctx).Notify(n)
	if err != nil {
		s.Logger.Warn("saving attendance failed", err)
		return s.renderScreen(ctx, route.PathAttendance, http.StatusInternalServerError, view, nil)
	}
	return s.redirect(ctx, route.PathAttendance+"?class="+view.Sheet.Class.ID+"&date="+view.Sheet.Date)
}

type feesData struct {
	screen.FeesView
	// Paid lists the payments marked as paid since the screen was loaded.
	Paid []string `json:"paid,omitempty"`
}

func (s *Server) loadFees(ctx echo.Context, usr user.User) (feesData, error) {
	filter := screen.FeeFilter{
		Search: ctx.FormValue("search"),
		Class:  ctx.FormValue("class"),
		Status: ctx.FormValue("status"),
	}
	view, err := screen.LoadFees(ctx.Request().Context(), s.Data, usr, filter)
	if err != nil {
		return feesData{}, err
	}
	data := feesData{FeesView: view}
	if view.Board == nil {
		return data, nil
	}
	params, err := ctx.FormParams()
	if err != nil {
		return data, err
	}
	for _, id := range params["paid"] {
		if _, err := view.Board.MarkAsPaid(id, s.now()); err == nil {
			data.Paid = append(data.Paid, id)
		}
	}
	return data, nil
}

func (s *Server) markFeePaid(ctx echo.Context) error {
	usr, err := s.requireControl(ctx, screen.MarkFeePaid)
	if err != nil {
		return err
	}
	data, err := s.loadFees(ctx, usr)
	if err != nil {
		return err
	}
	id := ctx.FormValue("payment")
	n, err := data.Board.MarkAsPaid(id, s.now())
	if err != nil {
		return err
	}
	data.Paid = append(data.Paid, id)
	getNotes(ctx).Notify(n)
	return s.renderScreen(ctx, route.PathFees, http.StatusOK, data, nil)
}

// feeReceipt serves the receipt of a payment as a QR code, to administrators and the paying family.
func (s *Server) feeReceipt(ctx echo.Context) error {
	usr, err := mustContextUser(ctx)
	if err != nil {
		return err
	}
	data, err := s.loadFees(ctx, usr)
	if err != nil {
		return err
	}
	row, ok := findPayment(data.FeesView, ctx.Param("id"))
	if !ok {
		return errHttpNotFound
	}
	png, err := qrcode.Encode(screen.Receipt(s.Conf.AppName, row), qrcode.Medium, receiptSize)
	if err != nil {
		return errors.Wrap(err, "encoding receipt")
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

func findPayment(view screen.FeesView, id string) (screen.PaymentRow, bool) {
	if view.Board != nil {
		return view.Board.Payment(id)
	}
	for _, fam := range view.Families {
		for _, it := range fam.Items {
			if it.PaymentID == id {
				return screen.PaymentRow{
					ID:          it.PaymentID,
					StudentID:   fam.Student.ID,
					StudentName: fam.Student.FullName(),
					ClassGrade:  fam.Student.ClassGrade,
					FeeID:       it.FeeID,
					FeeTitle:    it.Title,
					Amount:      it.Amount,
					Status:      it.Status,
					PaymentDate: it.PaymentDate,
				}, true
			}
		}
	}
	return screen.PaymentRow{}, false
}

type libraryData struct {
	*screen.LibraryView
	Reserved []string `json:"reserved,omitempty"`
	Borrowed []string `json:"borrowed,omitempty"`
}

// loadLibrary loads the catalogue with the loans and reservations made since the screen was loaded.
func (s *Server) loadLibrary(ctx echo.Context, usr user.User) (libraryData, error) {
	params, err := ctx.FormParams()
	if err != nil {
		return libraryData{}, err
	}
	view, err := screen.LoadLibrary(ctx.Request().Context(), s.Data, usr.Role, ctx.FormValue("search"), params["reserved"]...)
	if err != nil {
		return libraryData{}, err
	}
	data := libraryData{LibraryView: view, Reserved: params["reserved"]}
	for _, id := range params["borrowed"] {
		if _, err := view.Borrow(id, usr.FullName(), s.now()); err == nil {
			data.Borrowed = append(data.Borrowed, id)
		}
	}
	return data, nil
}

func (s *Server) borrowBook(ctx echo.Context) error {
	usr, err := s.requireControl(ctx, screen.BorrowBook)
	if err != nil {
		return err
	}
	data, err := s.loadLibrary(ctx, usr)
	if err != nil {
		return err
	}
	id := ctx.FormValue("book")
	n, err := data.Borrow(id, usr.FullName(), s.now())
	if err != nil {
		return err
	}
	data.Borrowed = append(data.Borrowed, id)
	getNotes(ctx).Notify(n)
	return s.renderScreen(ctx, route.PathLibrary, http.StatusOK, data, nil)
}

func (s *Server) reserveBook(ctx echo.Context) error {
	usr, err := s.requireControl(ctx, screen.ReserveBook)
	if err != nil {
		return err
	}
	data, err := s.loadLibrary(ctx, usr)
	if err != nil {
		return err
	}
	id := ctx.FormValue("book")
	n, err := data.Reserve(id)
	if err != nil {
		return err
	}
	data.Reserved = append(data.Reserved, id)
	getNotes(ctx).Notify(n)
	return s.renderScreen(ctx, route.PathLibrary, http.StatusOK, data, nil)
}

func (s *Server) requireControl(ctx echo.Context, c screen.Control) (user.User, error) {
	usr, err := mustContextUser(ctx)
	if err != nil {
		return usr, err
	}
	if !screen.Allowed(usr.Role, c) {
		return usr, errHttpForbidden
	}
	return usr, nil
}
