package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/session"
)

func (cli *commandLine) newStore() *session.Store {
	return session.NewStore(session.Deps{
		Users:    cli.users,
		Codec:    cli.codec,
		Storage:  cli.storage,
		Notifier: cli.notifier,
		TTL:      cli.conf.Session.TTL,
	})
}

func (cli *commandLine) accounts() error {
	for _, usr := range cli.users.Users() {
		fmt.Fprintf(cli.out, "%-3s %-8s %s\n", usr.ID, usr.Role, usr.Email)
	}
	return nil
}

func (cli *commandLine) login(email, pwd string) error {
	usr, err := cli.newStore().Login(context.Background(), email, pwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Signed in as %s (%s)\n", usr.FullName(), usr.Role.Label())
	return nil
}

func (cli *commandLine) whoami() error {
	st, err := cli.newStore().Restore(context.Background())
	if err != nil {
		return err
	}
	if !st.IsAuthenticated {
		return errNotSignedIn
	}
	fmt.Fprintf(cli.out, "%s <%s> (%s)\n", st.User.FullName(), st.User.Email, st.User.Role.Label())
	return nil
}

func (cli *commandLine) logout() error {
	store := cli.newStore()
	st, err := store.Restore(context.Background())
	if err != nil {
		return err
	}
	if !st.IsAuthenticated {
		return errNotSignedIn
	}
	return store.Logout()
}

func (cli *commandLine) decode(token string) error {
	p, err := cli.codec.Decode(token)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, string(b))

	exp := time.Unix(0, p.Exp*int64(time.Millisecond))
	status := "valid"
	if p.Exp < core.NowMillis(time.Now()) {
		status = "expired"
	}
	fmt.Fprintf(cli.out, "expires %s (%s)\n", exp.Format(time.RFC1123), status)
	return nil
}
