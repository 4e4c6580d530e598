package echoapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	. "github.com/campusdesk/portal/apps/api/echo"
	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/chat"
	"github.com/campusdesk/portal/core/portal"
	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/core/session"
	emailsvc "github.com/campusdesk/portal/services/email"
	logsvc "github.com/campusdesk/portal/services/logger"
	"github.com/campusdesk/portal/storage/database/memdb"
	"github.com/campusdesk/portal/tests"
)

type testApp struct {
	conf    *core.Config
	server  *Server
	store   *memdb.DB
	mailSvc *emailsvc.ConsoleServiceMock
}

func setup(t *testing.T) *testApp {
	t.Helper()
	conf := core.NewTestConfig()
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	store := testutil.OpenStore()
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)
	validate, translator := testutil.NewValidator()

	server := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Store:      store,
		MailSvc:    mailSvc,
		Chat:       chat.NewResponder(conf.Chat.MinDelay, conf.Chat.MaxDelay),
		Validate:   validate,
		Translator: translator,
	})
	t.Cleanup(func() { _ = server.Close() })

	return &testApp{conf: conf, server: server, store: store, mailSvc: mailSvc}
}

// resolver reads the entities of profileID directly from the store.
func (app *testApp) resolver(profileID string) *portal.Resolver {
	return portal.NewResolver(record.Scope(app.store, profileID))
}

func (app *testApp) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name         string
	method       string
	path         string
	body         []byte
	profile      string
	wantCode     int
	wantData     []byte
	wantLocation string
}

func newProfileID() string {
	return uuid.NewString()
}

func newProfileRequest(t *testing.T, conf *core.Config, method, path, profileID string, data ...[]byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if profileID != "" {
		token, err := NewProfileToken(conf, profileID)
		if err != nil {
			t.Fatalf("NewProfileToken(): %v", err)
		}
		req.AddCookie(&http.Cookie{Name: conf.Server.ProfileCookie, Value: token})
	}
	return req
}

func (app *testApp) run(t *testing.T, tt httpTest) *httptest.ResponseRecorder {
	t.Helper()
	rec := app.serve(newProfileRequest(t, app.conf, tt.method, tt.path, tt.profile, tt.body))
	checkCodeAndData(t, tt, rec)
	return rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if tt.wantCode == 0 {
		tt.wantCode = http.StatusOK
	}
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantLocation != "" {
		assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		return
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// currentSession reads the stored session of profileID.
func (app *testApp) currentSession(t *testing.T, profileID string) (session.Session, bool) {
	t.Helper()
	var sess session.Session
	found, err := record.ReadJSON(context.Background(), record.Scope(app.store, profileID), session.Key, &sess)
	if err != nil {
		t.Fatalf("ReadJSON(): %v", err)
	}
	return sess, found
}
