package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/educatesobreia/backend/apps/api/echo"
	"github.com/educatesobreia/backend/core/lead"
	emailsvc "github.com/educatesobreia/backend/services/email"
)

func Test_leadApi_register(t *testing.T) {
	srv, deps := setup(t)
	deps.inference.reply = "¡Bienvenida, Ana! El futuro del SEO te espera."

	body := marchallObj(t, lead.NewLead{Name: "Ana López", Email: "Ana@Example.com", Keyword: "SEO"})

	// a fresh registration creates the lead and opens the gate
	req, rec := newRequest(http.MethodPost, "/v1/leads/register", body)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling RegisterResponse: %v", err)
	}
	if resp.Lead.ID == "" {
		t.Error("lead ID not assigned")
	}
	if resp.Lead.Email != "ana@example.com" {
		t.Errorf("lead email = %q; want lowercased %q", resp.Lead.Email, "ana@example.com")
	}
	if resp.Greeting != deps.inference.reply {
		t.Errorf("greeting = %q; want %q", resp.Greeting, deps.inference.reply)
	}
	if resp.Token == "" {
		t.Error("no session token issued")
	}
	if len(emailsvc.SentMessages) != 1 {
		t.Errorf("sent emails = %d; want 1", len(emailsvc.SentMessages))
	}

	// the issued token unlocks the member area
	req, rec = newAuthRequest(http.MethodGet, "/v1/session", resp.Token)
	srv.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: []byte(`{"state":"registered","name":"Ana López","email":"ana@example.com","keyword":"SEO"}`),
	}, rec)

	// re-registering the same email (any casing) is a conflict, not a new lead
	dupBody := marchallObj(t, lead.NewLead{Name: "Ana L.", Email: "ANA@example.com", Keyword: "Ads"})
	req, rec = newRequest(http.MethodPost, "/v1/leads/register", dupBody)
	srv.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusConflict,
		wantData: []byte(`{"email":"this email is already registered"}`),
	}, rec)

	leads, err := deps.leadRepo.QueryAllLeads(context.Background())
	if err != nil {
		t.Fatalf("QueryAllLeads(): %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("lead count = %d; want 1", len(leads))
	}
}

func Test_leadApi_register_validation(t *testing.T) {
	srv, _ := setup(t)

	tests := []httpTest{
		{
			name:     "empty body",
			body:     marchallObj(t, lead.NewLead{}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name":"this field is required","email":"this field is required","keyword":"this field is required"}`),
		},
		{
			name:     "invalid email",
			body:     marchallObj(t, lead.NewLead{Name: "Ana", Email: "not-an-email", Keyword: "SEO"}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"email must be a valid email address"}`),
		},
		{
			name:     "blank keyword",
			body:     marchallObj(t, lead.NewLead{Name: "Ana", Email: "ana@example.com", Keyword: "   "}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"keyword":"this field is required"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/leads/register", tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_leadApi_register_inferenceDown(t *testing.T) {
	srv, deps := setup(t)
	deps.inference.err = errInferenceDown

	body := marchallObj(t, lead.NewLead{Name: "Luis Vega", Email: "luis@example.com", Keyword: "Marketing"})
	req, rec := newRequest(http.MethodPost, "/v1/leads/register", body)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling RegisterResponse: %v", err)
	}
	if resp.Greeting == "" {
		t.Error("greeting must fall back to the generic copy, not vanish")
	}
	if resp.Token == "" {
		t.Error("no session token issued")
	}
}
