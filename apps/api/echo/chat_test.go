package echoapi_test

import (
	"net/http"
	"testing"

	. "github.com/campusdesk/portal/apps/api/echo"
	"github.com/campusdesk/portal/core/chat"
)

func Test_chatApi_reply(t *testing.T) {
	app := setup(t)
	profileID := startSession(t, app, demoStudent)
	picker := chat.NewResponder(0, 0)

	tests := []httpTest{
		{
			name: "no session", profile: newProfileID(), body: []byte(`{"message":"hello"}`),
			wantCode: http.StatusFound, wantLocation: "/login",
		},
		{
			name: "keyword", body: []byte(`{"message":"When are the EXAMS schedule out?"}`),
			wantData: marchallObj(t, ChatResponse{Reply: picker.Pick("when are the exams schedule out?")}),
		},
		{
			name: "blank", body: []byte(`{"message":"   "}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"message": "this field is required"}),
		},
		{
			name: "missing", body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"message": "this field is required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodPost
			tt.path = "/chat"
			if tt.profile == "" {
				tt.profile = profileID
			}
			app.run(t, tt)
		})
	}
}
