package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/session"
	"github.com/trezcool/scholarsync/core/user"
	"github.com/trezcool/scholarsync/storage/kv"
	"github.com/trezcool/scholarsync/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	conf := testutil.NewConfig()
	store, err := kv.OpenBoltStorage(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	out := new(bytes.Buffer)
	return &commandLine{
		conf:     conf,
		users:    testutil.NewCredentials(t),
		codec:    session.MockCodec{},
		storage:  store,
		notifier: new(testutil.Notifications),
		out:      out,
	}, out
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
	wantOut string
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)
		pwd := tt.pwd

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			readPasswordFunc = func(fd int) ([]byte, error) { return []byte(pwd), nil }

			err := cli.run(args)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_session(t *testing.T) {
	cli, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: "Usage:"},
		{name: "accounts", args: []string{"accounts"}, wantOut: "parent@scholarsync.com"},
		{name: "whoami signed out", args: []string{"whoami"}, wantErr: errNotSignedIn},
		{name: "logout signed out", args: []string{"logout"}, wantErr: errNotSignedIn},
		{name: "login no email", args: []string{"login"}, wantErr: errHelp},
		{name: "login no password", args: []string{"login", "-email", "admin@scholarsync.com"}, wantErr: errHelp},
		{name: "login wrong password", args: []string{"login", "-email", "admin@scholarsync.com"}, pwd: "lol", wantErr: user.ErrInvalidCredentials},
		{name: "login email case", args: []string{"login", "-email", "Admin@scholarsync.com"}, pwd: "admin123", wantErr: user.ErrInvalidCredentials},
		{name: "login", args: []string{"login", "-email", "teacher@scholarsync.com"}, pwd: "teacher123", wantOut: "Signed in as Teacher User (Teacher)"},
		{name: "whoami", args: []string{"whoami"}, wantOut: "<teacher@scholarsync.com>"},
		{name: "logout", args: []string{"logout"}},
		{name: "whoami after logout", args: []string{"whoami"}, wantErr: errNotSignedIn},
	})
}

func Test_commandLine_whoamiExpired(t *testing.T) {
	cli, out := setup(t)

	token, err := cli.codec.Encode(session.Payload{
		ID:    "4",
		Email: "parent@scholarsync.com",
		Role:  user.RoleParent,
		Exp:   core.NowMillis(time.Now().Add(-time.Minute)),
	})
	require.NoError(t, err)
	require.NoError(t, cli.storage.Set(session.TokenKey, token))

	err = cli.run([]string{"admin", "whoami"})
	assert.Equal(t, session.ErrTokenExpired, err)

	_, err = cli.storage.Get(session.TokenKey)
	assert.Equal(t, session.ErrNotFound, err, "expired token should be removed")

	notes := cli.notifier.(*testutil.Notifications)
	assert.Equal(t, "Authentication Error", notes.Last().Title)
	assert.Empty(t, out.String())
}

func Test_commandLine_decode(t *testing.T) {
	cli, out := setup(t)

	valid, err := cli.codec.Encode(session.Payload{
		ID:    "1",
		Email: "admin@scholarsync.com",
		Role:  user.RoleAdmin,
		Exp:   core.NowMillis(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	expired, err := cli.codec.Encode(session.Payload{
		ID:    "1",
		Email: "admin@scholarsync.com",
		Role:  user.RoleAdmin,
		Exp:   1,
	})
	require.NoError(t, err)

	runCLITests(t, cli, out, []cliTest{
		{name: "no token", args: []string{"decode"}, wantErr: errHelp},
		{name: "malformed", args: []string{"decode", "-token", "abc"}, wantErr: session.ErrTokenMalformed},
		{name: "valid", args: []string{"decode", "-token", valid}, wantOut: "(valid)"},
		{name: "expired", args: []string{"decode", "-token", expired}, wantOut: "(expired)"},
	})

	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "decode", "-token", valid}))
	assert.True(t, strings.Contains(out.String(), `"email": "admin@scholarsync.com"`))
}
