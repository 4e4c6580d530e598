package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/campusdesk/portal/core/record"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp           = errors.New("help provided")
	errInvalidProfile = errors.New("profile must be a profile UUID")
)

type commandLine struct {
	store      record.Store
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  register -profile ID -role student|faculty -username USERNAME -email EMAIL - register an account")
	fmt.Fprintln(cli.out, "  accounts -profile ID - list the registered accounts")
	fmt.Fprintln(cli.out, "  session -profile ID - show who is logged in")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	registerProfile := registerCmd.String("profile", "", "The profile ID (the subject of the portal_profile cookie).")
	registerRole := registerCmd.String("role", "student", "The account role: student or faculty.")
	registerUname := registerCmd.String("username", "", "The account username. The password will be prompted next.")
	registerEmail := registerCmd.String("email", "", "The account email.")

	accountsCmd := flag.NewFlagSet("accounts", flag.ExitOnError)
	accountsProfile := accountsCmd.String("profile", "", "The profile ID.")

	sessionCmd := flag.NewFlagSet("session", flag.ExitOnError)
	sessionProfile := sessionCmd.String("profile", "", "The profile ID.")

	switch args[1] {
	case "register":
		if err := registerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *registerProfile == "" || *registerUname == "" {
			registerCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			registerCmd.Usage()
			return errHelp
		}
		return cli.register(*registerProfile, *registerRole, *registerUname, *registerEmail, string(pwd))
	case "accounts":
		if err := accountsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *accountsProfile == "" {
			accountsCmd.Usage()
			return errHelp
		}
		return cli.listAccounts(*accountsProfile)
	case "session":
		if err := sessionCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *sessionProfile == "" {
			sessionCmd.Usage()
			return errHelp
		}
		return cli.showSession(*sessionProfile)
	default:
		cli.printUsage()
		return errHelp
	}
}

// scope returns the store of profileID.
func (cli *commandLine) scope(profileID string) (record.Store, error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return nil, errInvalidProfile
	}
	return record.Scope(cli.store, profileID), nil
}
