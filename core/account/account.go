package account

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/record"
)

// Key is the store key of the accounts list.
const Key = "portalAccounts"

// Roles
const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleGuest   Role = "guest" // sessions only; accounts are never guests
)

var (
	roleTag  = "role"
	roleText = "{0} must be one of: student, faculty"
)

type Role string

// Valid reports whether r is a role an account can be registered with.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleFaculty
}

func (r Role) String() string { return string(r) }

// Account is a registered portal user. The password is kept as entered.
type Account struct {
	Role     Role   `json:"userType"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewAccount contains information needed to register an Account.
type NewAccount struct {
	Role            Role   `json:"userType" validate:"omitempty,role"`
	Username        string `json:"username" validate:"required,notblank"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Clean defaults the role to student. Username and email are kept as typed,
// since login matches the username exactly.
func (na *NewAccount) Clean() {
	if na.Role == "" {
		na.Role = RoleStudent
	}
}

// InitValidators registers the account validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(roleTag, func(fl validator.FieldLevel) bool {
		if r, ok := fl.Field().Interface().(Role); ok {
			return r.Valid()
		}
		return false
	})
	core.RegisterCustomTranslation(validate, translator, roleTag, roleText)
}

// Registry is the list of accounts registered in one store.
type Registry struct {
	store    record.Store
	validate *validator.Validate
}

func NewRegistry(store record.Store, validate *validator.Validate) *Registry {
	return &Registry{store: store, validate: validate}
}

// All returns the registered accounts in registration order.
// A corrupted list reads as empty.
func (reg *Registry) All(ctx context.Context) ([]Account, error) {
	return record.ReadList[Account](ctx, reg.store, Key)
}

// Register validates na and appends it to the list.
// Usernames are not required to be unique.
func (reg *Registry) Register(ctx context.Context, na NewAccount) (Account, error) {
	na.Clean()
	if err := reg.validate.Struct(na); err != nil {
		return Account{}, err
	}

	accounts, err := reg.All(ctx)
	if err != nil {
		return Account{}, err
	}
	acc := Account{
		Role:     na.Role,
		Username: na.Username,
		Email:    na.Email,
		Password: na.Password,
	}
	accounts = append(accounts, acc)
	if err = record.WriteJSON(ctx, reg.store, Key, accounts); err != nil {
		return Account{}, errors.Wrap(err, "saving accounts")
	}
	return acc, nil
}

// FindMatch reports whether an account with exactly this role, username and password exists.
func (reg *Registry) FindMatch(ctx context.Context, role Role, username, password string) (bool, error) {
	accounts, err := reg.All(ctx)
	if err != nil {
		return false, err
	}
	for _, acc := range accounts {
		if acc.Role == role && acc.Username == username && acc.Password == password {
			return true, nil
		}
	}
	return false, nil
}
