package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/session"
)

// register appends an account to the registry of profileID.
func (cli *commandLine) register(profileID, role, uname, email, pwd string) error {
	store, err := cli.scope(profileID)
	if err != nil {
		return err
	}
	reg := account.NewRegistry(store, cli.validate)
	acc, err := reg.Register(context.Background(), account.NewAccount{
		Role:            account.Role(core.CleanString(role, true /* lower */)),
		Username:        uname,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("invalid account: %s", formatFields(core.TranslateErrors(vErrs, cli.translator)))
		}
		return err
	}
	fmt.Fprintf(cli.out, "registered %s %q\n", acc.Role, acc.Username)
	return nil
}

func (cli *commandLine) listAccounts(profileID string) error {
	store, err := cli.scope(profileID)
	if err != nil {
		return err
	}
	accounts, err := account.NewRegistry(store, cli.validate).All(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tUSERNAME\tEMAIL")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", acc.Role, acc.Username, acc.Email)
	}
	return w.Flush()
}

func (cli *commandLine) showSession(profileID string) error {
	store, err := cli.scope(profileID)
	if err != nil {
		return err
	}
	mgr := session.NewManager(store, account.NewRegistry(store, cli.validate), cli.validate)
	sess, ok, err := mgr.Current(context.Background())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cli.out, "not logged in")
		return nil
	}
	line := fmt.Sprintf("%s %q", sess.Role, sess.Username)
	if sess.IsDemoIdentity() {
		line += " (demo)"
	}
	fmt.Fprintln(cli.out, line)
	return nil
}

// formatFields renders field errors as "a: msg; b: msg" in field order.
func formatFields(flds map[string]string) string {
	order := []string{"userType", "username", "email", "password", "confirmPassword"}
	parts := make([]string, 0, len(flds))
	for _, name := range order {
		if msg, ok := flds[name]; ok {
			parts = append(parts, name+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}
