package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	. "github.com/trezcool/scholarsync/apps/api/echo"
	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	"github.com/trezcool/scholarsync/tests"
)

var (
	app   *Server
	conf  *core.Config
	users *user.CredentialTable
)

func TestMain(m *testing.M) {
	var err error

	conf = testutil.NewConfig()
	validate, translator := testutil.NewValidator()
	if users, err = user.NewCredentialTable(bcrypt.MinCost); err != nil {
		fmt.Printf("user.NewCredentialTable(): %v", err)
		os.Exit(1)
	}

	app = NewServer(ServerDeps{
		Conf:       conf,
		Logger:     testutil.NopLogger{},
		Users:      users,
		Codec:      session.NewCodec(conf.Session.Signing, conf.SecretKey),
		Data:       testutil.NewDataService(),
		Validate:   validate,
		Translator: translator,
	})

	os.Exit(m.Run())
}

type httpErr struct {
	Error string `json:"error"`
}

// accounts are the demo users, by role.
var accounts = map[user.Role]struct{ id, email string }{
	user.RoleAdmin:   {id: "1", email: "admin@scholarsync.com"},
	user.RoleTeacher: {id: "2", email: "teacher@scholarsync.com"},
	user.RoleStudent: {id: "3", email: "student@scholarsync.com"},
	user.RoleParent:  {id: "4", email: "parent@scholarsync.com"},
}

func tokenFor(t *testing.T, role user.Role, ttl ...time.Duration) string {
	exp := time.Hour
	if len(ttl) > 0 {
		exp = ttl[0]
	}
	acc := accounts[role]
	token, err := session.MockCodec{}.Encode(session.Payload{
		ID:    acc.id,
		Email: acc.email,
		Role:  role,
		Exp:   core.NowMillis(time.Now().Add(exp)),
	})
	if err != nil {
		t.Fatalf("tokenFor(): %v", err)
	}
	return token
}

// newPageRequest builds a console request; the token, if any, is sent as the session cookie.
func newPageRequest(method, path, token string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.TokenKey, Value: token})
	}
	return req, httptest.NewRecorder()
}

// newAPIRequest builds a JSON API request; the token, if any, is sent as a bearer token.
func newAPIRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, httptest.NewRecorder()
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj(): %v", err)
	}
	return data
}

func unmarshalBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshalBody(%s): %v", rec.Body.String(), err)
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
