package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"

	. "github.com/educatesobreia/backend/apps/api/echo"
	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/catalog"
	"github.com/educatesobreia/backend/core/chat"
	"github.com/educatesobreia/backend/core/lead"
	"github.com/educatesobreia/backend/core/post"
	"github.com/educatesobreia/backend/core/session"
	emailsvc "github.com/educatesobreia/backend/services/email"
	inmemdb "github.com/educatesobreia/backend/storage/database/inmem"
	testutil "github.com/educatesobreia/backend/tests"
)

var (
	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errInvalidToken = httpErr{Error: "invalid or expired jwt"}

	errInferenceDown = errors.New("inference unavailable")
)

func init() {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(core.Validate, translator)
}

type fakeInference struct {
	reply string
	err   error
}

func (f *fakeInference) GenerateText(context.Context, core.GenerationRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type testDeps struct {
	conf       *core.Config
	logger     *testutil.Logger
	inference  *fakeInference
	leadRepo   lead.Repository
	postRepo   post.Repository
	sessionSvc *session.Service
}

func setup(t *testing.T) (*Server, *testDeps) {
	t.Helper()

	// set up DB & repos
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	leadRepo := inmemdb.NewLeadRepository(db)
	postRepo := inmemdb.NewPostRepository(db)

	// set up services
	conf := testutil.NewConfig()
	logger := testutil.NewLogger()
	inference := &fakeInference{reply: "ok"}
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	emailsvc.ResetSentMessages()

	sessionSvc := session.NewService(conf)

	// set up server
	srv := NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     logger,
			LeadSvc:    lead.NewService(leadRepo, mailSvc, inference, conf, logger),
			PostSvc:    post.NewService(postRepo, logger),
			CatalogSvc: catalog.NewService(inference, conf, logger),
			ChatSvc:    chat.NewService(inference, conf, logger),
			SessionSvc: sessionSvc,
		},
	)

	return srv, &testDeps{
		conf:       conf,
		logger:     logger,
		inference:  inference,
		leadRepo:   leadRepo,
		postRepo:   postRepo,
		sessionSvc: sessionSvc,
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, deps *testDeps, ld lead.Lead) string {
	t.Helper()
	token, err := deps.sessionSvc.GenerateToken(deps.sessionSvc.Claims(ld))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func registeredToken(t *testing.T, deps *testDeps) string {
	t.Helper()
	ld := testutil.CreateLead(t, deps.leadRepo, "Ana López", "ana@example.com", "SEO")
	return getToken(t, deps, ld)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed!\n%s", testutil.Diff(string(tt.wantData), rec.Body.String()))
	}
}
