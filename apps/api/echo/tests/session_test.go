package tests

import (
	"net/http"
	"testing"
)

func Test_sessionRetrieve(t *testing.T) {
	srv, deps := setup(t)
	token := registeredToken(t, deps)

	tests := []httpTest{
		{
			name:     "anonymous visitor is rejected",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "garbage token is rejected",
			token:    "lol.lol.lol",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errInvalidToken),
		},
		{
			name:     "valid token restores the registered session",
			token:    token,
			wantCode: http.StatusOK,
			wantData: []byte(`{"state":"registered","name":"Ana López","email":"ana@example.com","keyword":"SEO"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/session", tt.token)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
