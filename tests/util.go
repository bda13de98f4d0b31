package testutil

import (
	"context"
	"net/mail"
	"sync"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/lead"
	"github.com/educatesobreia/backend/core/post"
)

// NewConfig returns a self-contained configuration for tests; no env vars,
// no external services.
func NewConfig() *core.Config {
	return &core.Config{
		TestMode:               true,
		Env:                    "TEST",
		Build:                  "test",
		AppName:                "EducateSobreIA",
		SecretKey:              "s3cr3t",
		FrontendBaseURL:        "http://localhost:3000",
		DefaultFromEmail:       mail.Address{Name: "EducateSobreIA", Address: "noreply@localhost"},
		SessionExpirationDelta: 10 * time.Minute,
		Gemini: core.GeminiConfig{
			Model:       "gemini-test",
			Temperature: 0.7,
		},
	}
}

// Logger implements core.Logger; it records entries for assertions and
// stays quiet otherwise.
type Logger struct {
	mu      sync.Mutex
	entries []string
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (l *Logger) record(level, msg string) {
	l.mu.Lock()
	l.entries = append(l.entries, level+": "+msg)
	l.mu.Unlock()
}

// Entries returns a copy of everything logged so far.
func (l *Logger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Logger) Enable(bool) {}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record("DEBUG", msg) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record("INFO", msg) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record("WARN", msg) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record("ERROR", msg) }

// Fatal panics instead of exiting so a test can recover.
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.record("FATAL", msg)
	panic(msg)
}

// CreateLead persists a lead directly through the repository.
func CreateLead(t *testing.T, repo lead.Repository, name, email, keyword string) lead.Lead {
	t.Helper()
	ld, err := repo.CreateLead(context.Background(), lead.Lead{
		FullName:  name,
		Email:     email,
		Keyword:   keyword,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateLead(): %v", err)
	}
	return ld
}

// CreatePost persists a feed post directly through the repository;
// createdAt controls feed ordering.
func CreatePost(t *testing.T, repo post.Repository, author, title, content string, createdAt time.Time) post.Post {
	t.Helper()
	p, err := repo.CreatePost(context.Background(), post.Post{
		Author:    author,
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("CreatePost(): %v", err)
	}
	return p
}

// Diff returns a unified diff of want vs got for readable failure output.
func Diff(want, got string) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	return diff
}
