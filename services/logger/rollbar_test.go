package logsvc

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/user"
	testutil "github.com/trezcool/scholarsync/tests"
)

func TestRollbarLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewRollbarLogger(log.New(buf, "", 0), testutil.NewConfig())
	logger.Enable(false)

	usr := user.User{ID: "1", FirstName: "Admin", LastName: "User", Email: "admin@scholarsync.com"}
	note := core.Failure("Login Failed", "Invalid email or password")

	args := logger.prepare("login failed", []interface{}{usr, note, "extra"})
	assert.Equal(t, []interface{}{
		"login failed",
		map[string]interface{}{
			"notification.title":       "Login Failed",
			"notification.description": "Invalid email or password",
			"notification.variant":     "destructive",
		},
		"extra",
	}, args)

	logger.Info("hello", "world")
	assert.Equal(t, "hello\nworld\n", buf.String())
}
