package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/portal"
	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/core/session"
)

const (
	contextProfileKey = "profile"
	contextSessionKey = "session"
)

var errProfileNotFound = errors.New("profile not found in echo.Context")

// profile is the storage namespace of one client and the components scoped to it.
type profile struct {
	ID       string
	accounts *account.Registry
	sessions *session.Manager
	resolver *portal.Resolver
}

func newProfile(id string, store record.Store, validate *validator.Validate) *profile {
	scoped := record.Scope(store, id)
	accounts := account.NewRegistry(scoped, validate)
	return &profile{
		ID:       id,
		accounts: accounts,
		sessions: session.NewManager(scoped, accounts, validate),
		resolver: portal.NewResolver(scoped),
	}
}

// NewProfileToken signs a profile cookie value whose subject is profileID.
func NewProfileToken(conf *core.Config, profileID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    conf.AppName,
		Subject:   profileID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(conf.Server.ProfileTTL)),
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(conf.Server.ProfileSecret)
	if err != nil {
		return "", errors.Wrap(err, "signing profile token")
	}
	return ss, nil
}

// parseProfileToken returns the profile ID of a valid token.
func parseProfileToken(conf *core.Config, token string) (string, bool) {
	var claims jwt.RegisteredClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return conf.Server.ProfileSecret, nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}
	if _, err = uuid.Parse(claims.Subject); err != nil {
		return "", false
	}
	return claims.Subject, true
}

// profileMiddleware resolves the client profile from its cookie, issuing a new one
// when the cookie is missing or invalid.
func profileMiddleware(conf *core.Config, store record.Store, validate *validator.Validate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var id string
			if cookie, err := ctx.Cookie(conf.Server.ProfileCookie); err == nil {
				id, _ = parseProfileToken(conf, cookie.Value)
			}
			if id == "" {
				id = uuid.NewString()
				token, err := NewProfileToken(conf, id)
				if err != nil {
					return err
				}
				ctx.SetCookie(&http.Cookie{
					Name:     conf.Server.ProfileCookie,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(conf.Server.ProfileTTL),
					MaxAge:   int(conf.Server.ProfileTTL / time.Second),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx.Set(contextProfileKey, newProfile(id, store, validate))
			return next(ctx)
		}
	}
}

func getContextProfile(ctx echo.Context) (*profile, error) {
	if prof, ok := ctx.Get(contextProfileKey).(*profile); ok {
		return prof, nil
	}
	return nil, errProfileNotFound
}

// getContextSession returns the session of the request, loading it once.
func getContextSession(ctx echo.Context) (session.Session, bool, error) {
	if sess, ok := ctx.Get(contextSessionKey).(session.Session); ok {
		return sess, true, nil
	}
	prof, err := getContextProfile(ctx)
	if err != nil {
		return session.Session{}, false, err
	}
	sess, ok, err := prof.sessions.Current(ctx.Request().Context())
	if err != nil {
		return session.Session{}, false, errors.Wrap(err, "reading session")
	}
	if ok {
		ctx.Set(contextSessionKey, sess)
	}
	return sess, ok, nil
}
