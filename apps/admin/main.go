package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	notifysvc "github.com/trezcool/scholarsync/services/notify"
	"github.com/trezcool/scholarsync/storage/kv"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags)
	conf := core.NewConfig()

	// set up the token store
	store, err := kv.OpenBoltStorage(conf.Admin.TokenDB)
	errAndDie(err)

	users, err := user.NewCredentialTable(bcrypt.DefaultCost)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		conf:     conf,
		users:    users,
		codec:    session.NewCodec(conf.Session.Signing, conf.SecretKey),
		storage:  store,
		notifier: notifysvc.NewConsoleNotifier(logger, conf),
		out:      os.Stdout,
	}
	err = cli.run(os.Args)
	_ = store.Close()
	if err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
