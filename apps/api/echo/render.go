package echoapi

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/screen"
	appfs "github.com/trezcool/scholarsync/fs"
)

const errorPage = "error"

// Renderer renders the console pages: each page template is executed within the shared layout.
type Renderer struct {
	appName string
	pages   map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer(appName string) *Renderer {
	base := template.Must(template.New("").Funcs(templateFuncs()).ParseFS(appfs.FS, "templates/layout/*.html"))

	files, err := fs.Glob(appfs.FS, "templates/pages/*.html")
	if err != nil {
		panic(err)
	}
	r := &Renderer{appName: appName, pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), path.Ext(file))
		r.pages[name] = template.Must(template.Must(base.Clone()).ParseFS(appfs.FS, file))
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		// the embedded templates are incomplete: no page can be trusted to render
		return core.NewShutdownError(fmt.Sprintf("page template %q is missing", name))
	}
	return t.ExecuteTemplate(w, "layout", data)
}

func (r *Renderer) renderError(ctx echo.Context, code int, message interface{}) error {
	p := page{AppName: r.appName, Title: http.StatusText(code), Data: errorData{Code: code, Message: message}}
	if usr, ok := contextUser(ctx); ok {
		h := screen.NewHeader(usr, "", time.Now())
		p.Header = &h
	}
	if notes := getNotes(ctx); notes != nil {
		p.Notes = notes.Drain()
	}
	return ctx.Render(code, errorPage, p)
}

type errorData struct {
	Code    int
	Message interface{}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown": markdown,
		"rupees":   core.FormatRupees,
		"date":     screen.FormatDate,
		"title":    strings.Title,
		"dict":     dict,
	}
}

// markdown renders the free text of events and books.
func markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// dict builds a map from key/value pairs, for passing several values to a sub-template.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func staticHandler() echo.HandlerFunc {
	static, err := fs.Sub(appfs.FS, "static")
	if err != nil {
		panic(err)
	}
	return echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))
}
