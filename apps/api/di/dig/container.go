package dig_container

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"
	"golang.org/x/crypto/bcrypt"

	echoapi "github.com/trezcool/scholarsync/apps/api/echo"
	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	logsvc "github.com/trezcool/scholarsync/services/logger"
	metricsvc "github.com/trezcool/scholarsync/services/metrics"
	notifysvc "github.com/trezcool/scholarsync/services/notify"
	"github.com/trezcool/scholarsync/storage/fixtures"
)

type serverParams struct {
	dig.In
	Conf       *core.Config
	Logger     core.Logger
	Users      *user.CredentialTable
	Codec      session.Codec
	Data       school.Service
	Validate   *validator.Validate
	Translator ut.Translator
	Metrics    *metricsvc.Metrics
	Notifier   core.Notifier
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newNotifier(conf *core.Config) core.Notifier {
	return notifysvc.NewConsoleNotifier(log.New(os.Stdout, "NOTIFY : ", log.LstdFlags), conf)
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newCredentials(logger core.Logger) *user.CredentialTable {
	tbl, err := user.NewCredentialTable(bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("seeding demo accounts", err)
	}
	return tbl
}

func newDataService(conf *core.Config) school.Service {
	return fixtures.NewService(fixtures.Options{Latency: conf.Data.Latency})
}

func newCodec(conf *core.Config) session.Codec {
	return session.NewCodec(conf.Session.Signing, conf.SecretKey)
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		Users:      p.Users,
		Codec:      p.Codec,
		Data:       p.Data,
		Validate:   p.Validate,
		Translator: p.Translator,
		Metrics:    p.Metrics,
		Notifier:   p.Notifier,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newNotifier))
	must(c.Provide(validator.New))
	must(c.Provide(newTranslator))
	must(c.Provide(newCredentials))
	must(c.Provide(newDataService))
	must(c.Provide(newCodec))
	must(c.Provide(metricsvc.NewMetrics))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
