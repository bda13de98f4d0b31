package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/educatesobreia/backend/core/post"
	testutil "github.com/educatesobreia/backend/tests"
)

func Test_postApi_query(t *testing.T) {
	srv, deps := setup(t)
	token := registeredToken(t, deps)
	now := time.Now().UTC()

	// gate: members only
	req, rec := newRequest(http.MethodGet, "/v1/posts")
	srv.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)

	// an empty feed never renders empty
	req, rec = newAuthRequest(http.MethodGet, "/v1/posts", token)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
	}
	var posts []post.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("unmarshalling posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d; want 1 placeholder", len(posts))
	}
	if posts[0].Author != "Agente Neural" {
		t.Errorf("placeholder author = %q; want %q", posts[0].Author, "Agente Neural")
	}

	// seeded feed comes back newest first
	testutil.CreatePost(t, deps.postRepo, "Ana", "Primer post", "Contenido A", now.Add(-time.Hour))
	testutil.CreatePost(t, deps.postRepo, "Luis", "Segundo post", "Contenido B", now)

	req, rec = newAuthRequest(http.MethodGet, "/v1/posts", token)
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
	}
	posts = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("unmarshalling posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d; want 2", len(posts))
	}
	if posts[0].Title != "Segundo post" || posts[1].Title != "Primer post" {
		t.Errorf("feed order = [%q, %q]; want newest first", posts[0].Title, posts[1].Title)
	}
}
