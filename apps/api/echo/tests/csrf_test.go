package tests

import (
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/scholarsync/apps/api/echo"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/tests"
)

var csrfInput = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

func TestCSRF(t *testing.T) {
	csrfConf := *conf
	csrfConf.Server.CSRF = true
	validate, translator := testutil.NewValidator()
	csrfApp := NewServer(ServerDeps{
		Conf:       &csrfConf,
		Logger:     testutil.NopLogger{},
		Users:      users,
		Codec:      session.NewCodec(csrfConf.Session.Signing, csrfConf.SecretKey),
		Data:       testutil.NewDataService(),
		Validate:   validate,
		Translator: translator,
	})

	req, rec := newPageRequest(http.MethodGet, "/login", "", nil)
	csrfApp.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, "_csrf")
	require.NotNil(t, cookie)
	m := csrfInput.FindStringSubmatch(rec.Body.String())
	require.Len(t, m, 2, "login form should carry the csrf token")
	assert.Equal(t, cookie.Value, m[1])

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "valid token", token: cookie.Value, wantCode: http.StatusSeeOther},
		{name: "forged token", token: "forged", wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{
				"email":    {"admin@scholarsync.com"},
				"password": {"admin123"},
				"_csrf":    {tt.token},
			}
			req, rec := newPageRequest(http.MethodPost, "/login", "", form)
			req.AddCookie(cookie)
			csrfApp.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "You do not have access to this page.")
				assert.Nil(t, findCookie(rec, session.TokenKey))
			}
		})
	}
}
