package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/session"
	emailsvc "github.com/campusdesk/portal/services/email"
)

var errUnknownDemo = core.NewValidationError(
	errors.New("unknown demo"),
	core.FieldError{Field: "demo", Error: "demo must be one of: student, faculty"},
)

type authApi struct {
	mailSvc core.EmailService
	logger  core.Logger
}

func registerAuthAPI(g *echo.Group, mailSvc core.EmailService, logger core.Logger) {
	api := authApi{mailSvc: mailSvc, logger: logger}

	g.GET("/", api.home)
	g.GET("/login", api.loginPage)
	g.POST("/login", api.login)
	g.GET("/signup", api.signupPage)
	g.POST("/signup", api.signup)
	// the stored session is kept; the next login overwrites it
	g.GET("/logout", api.logout)
	g.POST("/logout", api.logout)
}

type (
	PageResponse struct {
		Page  string         `json:"page"`
		Roles []account.Role `json:"roles,omitempty"`
	}

	SessionResponse struct {
		Session  session.Session `json:"session"`
		Redirect string          `json:"redirect"`
	}
)

// Handlers

func (api *authApi) home(ctx echo.Context) error {
	_, ok, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	if ok {
		return ctx.Redirect(http.StatusFound, dashboardPath)
	}
	return ctx.Redirect(http.StatusFound, loginPath)
}

func (api *authApi) loginPage(ctx echo.Context) error {
	if demo := ctx.QueryParam("demo"); demo != "" {
		return api.demoLogin(ctx, account.Role(core.CleanString(demo, true /* lower */)))
	}
	return ctx.JSON(http.StatusOK, PageResponse{
		Page:  "login",
		Roles: []account.Role{account.RoleStudent, account.RoleFaculty},
	})
}

func (api *authApi) demoLogin(ctx echo.Context, role account.Role) error {
	if session.DemoUsername(role) == "" {
		return errUnknownDemo
	}
	prof, err := getContextProfile(ctx)
	if err != nil {
		return err
	}
	if _, err = prof.sessions.StartDemo(ctx.Request().Context(), role); err != nil {
		return errors.Wrap(err, "starting demo session")
	}
	return ctx.Redirect(http.StatusFound, dashboardPath)
}

func (api *authApi) login(ctx echo.Context) error {
	var data session.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	prof, err := getContextProfile(ctx)
	if err != nil {
		return err
	}

	sess, err := prof.sessions.Login(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SessionResponse{Session: sess, Redirect: dashboardPath})
}

func (api *authApi) signupPage(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, PageResponse{
		Page:  "signup",
		Roles: []account.Role{account.RoleStudent, account.RoleFaculty},
	})
}

func (api *authApi) signup(ctx echo.Context) error {
	var data account.NewAccount
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAccount")
	}
	prof, err := getContextProfile(ctx)
	if err != nil {
		return err
	}

	acc, sess, err := prof.sessions.Signup(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	api.logger.Info("account registered", sess)
	api.mailSvc.SendMessages(emailsvc.NewWelcomeMessage(acc.Username, acc.Role.String(), acc.Email))

	return ctx.JSON(http.StatusCreated, SessionResponse{Session: sess, Redirect: dashboardPath})
}

func (api *authApi) logout(ctx echo.Context) error {
	return ctx.Redirect(http.StatusFound, loginPath)
}
