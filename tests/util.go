package testutil

import (
	"context"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/core/session"
	"github.com/campusdesk/portal/storage/database/memdb"
)

// NewValidator returns a validator with every portal validation tag registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate, translator := core.NewValidator()
	account.InitValidators(validate, translator)
	return validate, translator
}

func OpenStore() *memdb.DB {
	return memdb.Open()
}

func CreateAccount(t *testing.T, store record.Store, profileID string, role account.Role, uname, email, pwd string) account.Account {
	validate, _ := NewValidator()
	reg := account.NewRegistry(record.Scope(store, profileID), validate)
	acc, err := reg.Register(context.Background(), account.NewAccount{
		Role:            role,
		Username:        uname,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	return acc
}

func StartSession(t *testing.T, store record.Store, profileID string, role account.Role, uname string, isDemo bool) session.Session {
	validate, _ := NewValidator()
	scoped := record.Scope(store, profileID)
	mgr := session.NewManager(scoped, account.NewRegistry(scoped, validate), validate)
	sess, err := mgr.Start(context.Background(), role, uname, isDemo)
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	return sess
}

// WriteList stores list as the raw entity record under key in profileID's namespace.
func WriteList(t *testing.T, store record.Store, profileID, key string, list interface{}) {
	if err := record.WriteJSON(context.Background(), record.Scope(store, profileID), key, list); err != nil {
		t.Fatalf("WriteList() failed: %v", err)
	}
}
