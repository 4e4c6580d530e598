package echoapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/campusdesk/portal/apps/api/echo"
	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/core/session"
	"github.com/campusdesk/portal/tests"
)

func Test_authApi_home(t *testing.T) {
	app := setup(t)
	loggedIn := newProfileID()
	testutil.StartSession(t, app.store, loggedIn, account.RoleStudent, "jane", false)

	tests := []httpTest{
		{name: "no profile", path: "/", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "no session", path: "/", profile: newProfileID(), wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "session", path: "/", profile: loggedIn, wantCode: http.StatusFound, wantLocation: "/dashboard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app.run(t, tt)
		})
	}
}

func Test_authApi_demoLogin(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name     string
		demo     string
		wantSess session.Session
	}{
		{name: "student", demo: "student", wantSess: session.Session{Role: account.RoleStudent, Username: session.DemoStudent, IsDemo: true}},
		{name: "faculty", demo: "faculty", wantSess: session.Session{Role: account.RoleFaculty, Username: session.DemoFaculty, IsDemo: true}},
		{name: "case insensitive", demo: "FACULTY", wantSess: session.Session{Role: account.RoleFaculty, Username: session.DemoFaculty, IsDemo: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileID := newProfileID()
			app.run(t, httpTest{
				path:         "/login?demo=" + tt.demo,
				profile:      profileID,
				wantCode:     http.StatusFound,
				wantLocation: "/dashboard",
			})
			sess, found := app.currentSession(t, profileID)
			require.True(t, found)
			assert.Equal(t, tt.wantSess, sess)
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		profileID := newProfileID()
		app.run(t, httpTest{
			path:     "/login?demo=guest",
			profile:  profileID,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"demo": "demo must be one of: student, faculty"}),
		})
		_, found := app.currentSession(t, profileID)
		assert.False(t, found)
	})

	t.Run("demo overwrites the previous session", func(t *testing.T) {
		profileID := newProfileID()
		testutil.StartSession(t, app.store, profileID, account.RoleStudent, "jane", false)
		app.run(t, httpTest{path: "/login?demo=faculty", profile: profileID, wantCode: http.StatusFound, wantLocation: "/dashboard"})
		sess, _ := app.currentSession(t, profileID)
		assert.Equal(t, session.DemoFaculty, sess.Username)
	})
}

func Test_authApi_pages(t *testing.T) {
	app := setup(t)
	roles := []account.Role{account.RoleStudent, account.RoleFaculty}

	tests := []httpTest{
		{name: "login", path: "/login", profile: newProfileID(), wantData: marchallObj(t, PageResponse{Page: "login", Roles: roles})},
		{name: "signup", path: "/signup", profile: newProfileID(), wantData: marchallObj(t, PageResponse{Page: "signup", Roles: roles})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app.run(t, tt)
		})
	}
}

func Test_authApi_signupThenLogin(t *testing.T) {
	app := setup(t)
	profileID := newProfileID()

	signup := marchallObj(t, map[string]string{
		"userType":        "faculty",
		"username":        "Dr. Okafor ",
		"email":           "okafor@university.edu",
		"password":        "pass",
		"confirmPassword": "pass",
	})
	wantSess := session.Session{Role: account.RoleFaculty, Username: "Dr. Okafor "}

	app.run(t, httpTest{
		method:   http.MethodPost,
		path:     "/signup",
		body:     signup,
		profile:  profileID,
		wantCode: http.StatusCreated,
		wantData: marchallObj(t, SessionResponse{Session: wantSess, Redirect: "/dashboard"}),
	})

	sent := app.mailSvc.SentMessages()
	if assert.Len(t, sent, 1) {
		assert.Equal(t, "okafor@university.edu", sent[0].To[0].Address)
		assert.Contains(t, sent[0].TextContent, "Hello Dr. Okafor")
		assert.Contains(t, sent[0].TextContent, "faculty account")
	}

	tests := []httpTest{
		{
			name:     "matching credentials",
			body:     marchallObj(t, map[string]string{"userType": "faculty", "username": "Dr. Okafor ", "password": "pass"}),
			wantData: marchallObj(t, SessionResponse{Session: wantSess, Redirect: "/dashboard"}),
		},
		{
			name:     "wrong password",
			body:     marchallObj(t, map[string]string{"userType": "faculty", "username": "Dr. Okafor ", "password": "Pass"}),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "account not found"}),
		},
		{
			name:     "wrong role",
			body:     marchallObj(t, map[string]string{"userType": "student", "username": "Dr. Okafor ", "password": "pass"}),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "account not found"}),
		},
		{
			name:     "username not trimmed",
			body:     marchallObj(t, map[string]string{"userType": "faculty", "username": "Dr. Okafor", "password": "pass"}),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "account not found"}),
		},
		{
			name:     "role defaults to student",
			body:     marchallObj(t, map[string]string{"username": "Dr. Okafor ", "password": "pass"}),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "account not found"}),
		},
		{
			name:     "empty credentials",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"username": "this field is required",
				"password": "this field is required",
			}),
		},
		{
			name:     "other profile",
			body:     marchallObj(t, map[string]string{"userType": "faculty", "username": "Dr. Okafor ", "password": "pass"}),
			profile:  newProfileID(),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "account not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodPost
			tt.path = "/login"
			if tt.profile == "" {
				tt.profile = profileID
			}
			app.run(t, tt)
		})
	}
}

func Test_authApi_signupValidation(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name:     "empty",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"username":        "this field is required",
				"email":           "this field is required",
				"password":        "this field is required",
				"confirmPassword": "this field is required",
			}),
		},
		{
			name: "passwords mismatch",
			body: marchallObj(t, map[string]string{
				"username": "jane", "email": "jane@university.edu", "password": "a", "confirmPassword": "b",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"confirmPassword": "passwords do not match"}),
		},
		{
			name: "unknown role",
			body: marchallObj(t, map[string]string{
				"userType": "admin", "username": "jane", "email": "jane@university.edu", "password": "a", "confirmPassword": "a",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"userType": "userType must be one of: student, faculty"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileID := newProfileID()
			tt.method = http.MethodPost
			tt.path = "/signup"
			tt.profile = profileID
			app.run(t, tt)

			_, found := app.currentSession(t, profileID)
			assert.False(t, found)
		})
	}
	assert.Empty(t, app.mailSvc.SentMessages())
}

func Test_authApi_duplicateSignup(t *testing.T) {
	app := setup(t)
	profileID := newProfileID()
	body := marchallObj(t, map[string]string{
		"username": "jane", "email": "jane@university.edu", "password": "a", "confirmPassword": "a",
	})

	for i := 0; i < 2; i++ {
		app.run(t, httpTest{method: http.MethodPost, path: "/signup", body: body, profile: profileID, wantCode: http.StatusCreated})
	}
	validate, _ := testutil.NewValidator()
	accounts, err := account.NewRegistry(record.Scope(app.store, profileID), validate).All(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func Test_authApi_logoutKeepsSession(t *testing.T) {
	app := setup(t)
	profileID := newProfileID()
	want := testutil.StartSession(t, app.store, profileID, account.RoleStudent, "jane", false)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		app.run(t, httpTest{method: method, path: "/logout", profile: profileID, wantCode: http.StatusFound, wantLocation: "/login"})
	}

	sess, found := app.currentSession(t, profileID)
	require.True(t, found)
	assert.Equal(t, want, sess)
	app.run(t, httpTest{path: "/dashboard", profile: profileID})
}
