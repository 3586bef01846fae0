package metricsvc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.Login(OK)
	m.Login(Failed)
	m.Login(Failed)
	m.Form("student", Invalid)
	m.Request(http.MethodGet, http.StatusOK)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.logins.WithLabelValues(OK)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.logins.WithLabelValues(Failed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.forms.WithLabelValues("student", Invalid)))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `scholarsync_http_requests_total{code="200",method="GET"} 1`)
}
