package session

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/record"
)

// Key is the store key of the current session.
const Key = "portalUser"

// Demo identities
const (
	DemoStudent = "Rahul Sharma"
	DemoFaculty = "Prof. Ananya Patel"
)

var ErrAccountNotFound = errors.New("account not found")

// Session describes who is logged in.
type Session struct {
	Role     account.Role `json:"userType"`
	Username string       `json:"username"`
	IsDemo   bool         `json:"isDemo"`
}

// DemoUsername returns the fixed demo identity of role, or "" when role has none.
func DemoUsername(role account.Role) string {
	switch role {
	case account.RoleStudent:
		return DemoStudent
	case account.RoleFaculty:
		return DemoFaculty
	}
	return ""
}

// IsDemoIdentity reports whether username is the demo identity of role.
func IsDemoIdentity(role account.Role, username string) bool {
	demo := DemoUsername(role)
	return demo != "" && demo == username
}

// IsDemoIdentity reports whether the session must be served demo data.
func (s Session) IsDemoIdentity() bool {
	return s.IsDemo || IsDemoIdentity(s.Role, s.Username)
}

func (s Session) IsStudent() bool { return s.Role == account.RoleStudent }
func (s Session) IsFaculty() bool { return s.Role == account.RoleFaculty }

// Credentials are what a user logs in with.
type Credentials struct {
	Role     account.Role `json:"userType" validate:"omitempty,role"`
	Username string       `json:"username" validate:"required,notblank"`
	Password string       `json:"password" validate:"required"`
}

// Manager holds the single session of a store.
type Manager struct {
	store    record.Store
	accounts *account.Registry
	validate *validator.Validate
}

func NewManager(store record.Store, accounts *account.Registry, validate *validator.Validate) *Manager {
	return &Manager{store: store, accounts: accounts, validate: validate}
}

// Start overwrites the current session.
func (m *Manager) Start(ctx context.Context, role account.Role, username string, isDemo bool) (Session, error) {
	sess := Session{Role: role, Username: username, IsDemo: isDemo}
	if err := record.WriteJSON(ctx, m.store, Key, sess); err != nil {
		return Session{}, errors.Wrap(err, "saving session")
	}
	return sess, nil
}

// Current returns the stored session. false means nobody is logged in.
func (m *Manager) Current(ctx context.Context) (Session, bool, error) {
	var sess Session
	found, err := record.ReadJSON(ctx, m.store, Key, &sess)
	if err != nil || !found {
		return Session{}, false, err
	}
	if sess.Role == "" || sess.Username == "" {
		return Session{}, false, nil
	}
	return sess, true, nil
}

// StartDemo logs in as the fixed demo identity of role without consulting the registry.
func (m *Manager) StartDemo(ctx context.Context, role account.Role) (Session, error) {
	uname := DemoUsername(role)
	if uname == "" {
		return Session{}, errors.Errorf("no demo identity for role %q", role)
	}
	return m.Start(ctx, role, uname, true)
}

// Login starts a session for a registered account.
// ErrAccountNotFound is returned when no account matches the credentials exactly.
func (m *Manager) Login(ctx context.Context, creds Credentials) (Session, error) {
	if creds.Role == "" {
		creds.Role = account.RoleStudent
	}
	if err := m.validate.Struct(creds); err != nil {
		return Session{}, err
	}

	ok, err := m.accounts.FindMatch(ctx, creds.Role, creds.Username, creds.Password)
	if err != nil {
		return Session{}, errors.Wrap(err, "matching account")
	}
	if !ok {
		return Session{}, ErrAccountNotFound
	}
	return m.Start(ctx, creds.Role, creds.Username, false)
}

// Signup registers na and logs it in.
func (m *Manager) Signup(ctx context.Context, na account.NewAccount) (account.Account, Session, error) {
	acc, err := m.accounts.Register(ctx, na)
	if err != nil {
		return account.Account{}, Session{}, err
	}
	sess, err := m.Start(ctx, acc.Role, acc.Username, false)
	if err != nil {
		return account.Account{}, Session{}, err
	}
	return acc, sess, nil
}
