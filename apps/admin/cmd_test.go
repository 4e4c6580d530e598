package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/storage/database/memdb"
	"github.com/campusdesk/portal/tests"
)

func setup(t *testing.T) (*commandLine, *memdb.DB, *bytes.Buffer) {
	store := testutil.OpenStore()
	validate, translator := testutil.NewValidator()
	out := new(bytes.Buffer)
	return &commandLine{store: store, validate: validate, translator: translator, out: out}, store, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_register(t *testing.T) {
	cli, store, _ := setup(t)
	profileID := uuid.NewString()

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"register"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"register", "-profile", profileID, "-username", "jane"}, wantErr: errHelp},
		{
			name: "invalid profile", args: []string{"register", "-profile", "lol", "-username", "jane", "-email", "jane@university.edu"},
			extra: extra{pwd: "x"}, wantErr: errInvalidProfile,
		},
		{
			name: "missing email", args: []string{"register", "-profile", profileID, "-username", "jane", "-email", ""},
			extra: extra{pwd: "x"}, wantErrStr: "invalid account: email: this field is required",
		},
		{
			name: "invalid role", args: []string{"register", "-profile", profileID, "-role", "admin", "-username", "jane", "-email", "jane@university.edu"},
			extra: extra{pwd: "x"}, wantErrStr: "invalid account: userType: userType must be one of: student, faculty",
		},
		{
			name: "student", args: []string{"register", "-profile", profileID, "-username", "jane", "-email", "jane@university.edu"},
			extra: extra{pwd: "secret"},
		},
		{
			name: "email kept as typed", args: []string{"register", "-profile", profileID, "-username", "kim", "-email", "kim"},
			extra: extra{pwd: "secret"},
		},
		{
			name: "faculty", args: []string{"register", "-profile", profileID, "-role", "Faculty", "-username", "okafor", "-email", "okafor@university.edu"},
			extra: extra{pwd: "secret"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				assert.EqualError(t, err, tt.wantErrStr)
			default:
				assert.NoError(t, err)
			}
		})
	}

	validate, _ := testutil.NewValidator()
	reg := account.NewRegistry(record.Scope(store, profileID), validate)
	accounts, err := reg.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []account.Account{
		{Role: account.RoleStudent, Username: "jane", Email: "jane@university.edu", Password: "secret"},
		{Role: account.RoleStudent, Username: "kim", Email: "kim", Password: "secret"},
		{Role: account.RoleFaculty, Username: "okafor", Email: "okafor@university.edu", Password: "secret"},
	}, accounts)
}

func Test_commandLine_accounts(t *testing.T) {
	cli, store, out := setup(t)
	profileID := uuid.NewString()
	testutil.CreateAccount(t, store, profileID, account.RoleStudent, "jane", "jane@university.edu", "x")
	testutil.CreateAccount(t, store, profileID, account.RoleFaculty, "okafor", "okafor@university.edu", "y")

	require.NoError(t, cli.run([]string{"admin", "accounts", "-profile", profileID}))
	assert.Equal(t,
		"ROLE     USERNAME  EMAIL\n"+
			"student  jane      jane@university.edu\n"+
			"faculty  okafor    okafor@university.edu\n",
		out.String(),
	)

	assert.Equal(t, errHelp, cli.run([]string{"admin", "accounts"}))
}

func Test_commandLine_session(t *testing.T) {
	cli, store, out := setup(t)

	tests := []struct {
		name    string
		start   func(profileID string)
		wantOut string
	}{
		{name: "logged out", start: func(string) {}, wantOut: "not logged in\n"},
		{
			name:    "registered",
			start:   func(id string) { testutil.StartSession(t, store, id, account.RoleStudent, "jane", false) },
			wantOut: "student \"jane\"\n",
		},
		{
			name:    "demo",
			start:   func(id string) { testutil.StartSession(t, store, id, account.RoleFaculty, "Prof. Ananya Patel", true) },
			wantOut: "faculty \"Prof. Ananya Patel\" (demo)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			profileID := uuid.NewString()
			tt.start(profileID)
			require.NoError(t, cli.run([]string{"admin", "session", "-profile", profileID}))
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}
