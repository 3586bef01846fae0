package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName      string
		Build        string
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		WorkDir      string

		Server struct {
			Host            string
			DebugHost       string
			ShutdownTimeout time.Duration
			DisableReqLogs  bool
			CSRF            bool
			SecureCookies   bool
		}

		Session struct {
			TTL        time.Duration
			LoginDelay time.Duration
			Signing    string // "mock" | "hs256"
		}

		Data struct {
			Latency bool
		}

		Forms struct {
			SubmitDelay     time.Duration
			PaymentDelay    time.Duration
			AttendanceDelay time.Duration
		}

		Admin struct {
			TokenDB string
		}
	}
)

const (
	SigningMock  = "mock"
	SigningHS256 = "hs256"

	DefaultSessionTTL = time.Hour
)

// NewConfig loads the configuration from defaults, the optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed with the environment name, e.g. `DEV_SERVER_HOST`.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Scholar Sync")
	v.SetDefault("build", "dev")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("secretKey", "xq3-tuo)anm$+12=pl&dsz1(k!w)#*r8(#hb5^$vfqa4jtw")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.host", ":8000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.csrf", true)
	v.SetDefault("server.secureCookies", false)
	v.SetDefault("session.ttl", DefaultSessionTTL)
	v.SetDefault("session.loginDelay", time.Second)
	v.SetDefault("session.signing", SigningMock)
	v.SetDefault("data.latency", true)
	v.SetDefault("forms.submitDelay", time.Second)
	v.SetDefault("forms.paymentDelay", 1500*time.Millisecond)
	v.SetDefault("forms.attendanceDelay", 800*time.Millisecond)
	v.SetDefault("admin.tokenDB", filepath.Join(os.TempDir(), "scholarsync-admin.db"))

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
		WorkDir:      wd,
	}
	conf.Server.Host = v.GetString("server.host")
	conf.Server.DebugHost = v.GetString("server.debugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("server.shutdownTimeout")
	conf.Server.DisableReqLogs = v.GetBool("server.disableReqLogs")
	conf.Server.CSRF = v.GetBool("server.csrf")
	conf.Server.SecureCookies = v.GetBool("server.secureCookies")
	conf.Session.TTL = v.GetDuration("session.ttl")
	conf.Session.LoginDelay = v.GetDuration("session.loginDelay")
	conf.Session.Signing = strings.ToLower(v.GetString("session.signing"))
	conf.Data.Latency = v.GetBool("data.latency")
	conf.Forms.SubmitDelay = v.GetDuration("forms.submitDelay")
	conf.Forms.PaymentDelay = v.GetDuration("forms.paymentDelay")
	conf.Forms.AttendanceDelay = v.GetDuration("forms.attendanceDelay")
	conf.Admin.TokenDB = v.GetString("admin.tokenDB")
	return conf
}
