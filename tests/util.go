package testutil

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/form"
	"github.com/trezcool/scholarsync/core/user"
	"github.com/trezcool/scholarsync/storage/fixtures"
)

// NopLogger discards everything.
type NopLogger struct{}

var _ core.Logger = NopLogger{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}

// NewConfig returns a test configuration: no simulated latency, no CSRF, no request logs.
func NewConfig() *core.Config {
	conf := &core.Config{
		AppName:   "Scholar Sync",
		Build:     "test",
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "test-secret",
	}
	conf.Server.DisableReqLogs = true
	conf.Session.TTL = core.DefaultSessionTTL
	conf.Session.Signing = core.SigningMock
	conf.Admin.TokenDB = ""
	return conf
}

// NewValidator returns a validator and translator with every custom validator registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	form.InitValidators(validate, translator)
	user.LoadCommonPasswords(NopLogger{})
	return validate, translator
}

// NewCredentials returns the demo credential table hashed with the minimum bcrypt cost.
func NewCredentials(t *testing.T) *user.CredentialTable {
	tbl, err := user.NewCredentialTable(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewCredentials() failed: %v", err)
	}
	return tbl
}

// NewDataService returns the fixtures-backed data service without simulated latency.
func NewDataService() *fixtures.Service {
	return fixtures.NewService(fixtures.Options{})
}

// Notifications records notifications in order.
type Notifications struct {
	List []core.Notification
}

func (n *Notifications) Notify(nt core.Notification) {
	n.List = append(n.List, nt)
}

// Last returns the most recent notification, or the zero value.
func (n *Notifications) Last() core.Notification {
	if len(n.List) == 0 {
		return core.Notification{}
	}
	return n.List[len(n.List)-1]
}
