package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errNotSignedIn = errors.New("not signed in")
)

type commandLine struct {
	conf     *core.Config
	users    *user.CredentialTable
	codec    session.Codec
	storage  session.Storage
	notifier core.Notifier
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  accounts - list the demo accounts")
	fmt.Fprintln(cli.out, "  login -email EMAIL - sign in and keep the session token")
	fmt.Fprintln(cli.out, "  whoami - show the signed in user")
	fmt.Fprintln(cli.out, "  logout - sign out and remove the session token")
	fmt.Fprintln(cli.out, "  decode -token TOKEN - print the payload of a session token")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	loginEmail := loginCmd.String("email", "", "The account email. The password will be prompted next.")
	decodeCmd := flag.NewFlagSet("decode", flag.ContinueOnError)
	decodeToken := decodeCmd.String("token", "", "The session token to decode.")

	switch args[1] {
	case "accounts":
		return cli.accounts()
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, string(pwd))
	case "whoami":
		return cli.whoami()
	case "logout":
		return cli.logout()
	case "decode":
		if err := decodeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *decodeToken == "" {
			decodeCmd.Usage()
			return errHelp
		}
		return cli.decode(*decodeToken)
	default:
		cli.printUsage()
		return errHelp
	}
}
