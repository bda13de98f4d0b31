package chat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/chat"
	testutil "github.com/educatesobreia/backend/tests"
)

const (
	emptyReply    = "Error al conectar con la red neuronal."
	fallbackReply = "Mi red está experimentando interferencias. Intenta de nuevo en unos nano-segundos."
)

type fakeInference struct {
	reply   string
	err     error
	lastReq core.GenerationRequest
}

func (f *fakeInference) GenerateText(_ context.Context, req core.GenerationRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestService_Ask(t *testing.T) {
	ctx := context.Background()
	conf := testutil.NewConfig()

	t.Run("returns the tutor's answer", func(t *testing.T) {
		inference := &fakeInference{reply: "Un transformer procesa tokens en paralelo."}
		svc := chat.NewService(inference, conf, testutil.NewLogger())

		answer := svc.Ask(ctx, "¿Qué es un transformer?", "Fundamentos de LLMs")
		if answer != inference.reply {
			t.Errorf("Ask() = %q, want %q", answer, inference.reply)
		}
	})

	t.Run("inference failure yields the apology, never an error", func(t *testing.T) {
		logger := testutil.NewLogger()
		svc := chat.NewService(&fakeInference{err: errors.New("quota exceeded")}, conf, logger)

		answer := svc.Ask(ctx, "¿Qué es un transformer?", "")
		if answer != fallbackReply {
			t.Errorf("Ask() = %q, want the apology fallback", answer)
		}
		if len(logger.Entries()) == 0 {
			t.Error("inference failure was not logged")
		}
	})

	t.Run("empty answer yields the connection-error copy", func(t *testing.T) {
		svc := chat.NewService(&fakeInference{reply: ""}, conf, testutil.NewLogger())

		if answer := svc.Ask(ctx, "hola", ""); answer != emptyReply {
			t.Errorf("Ask() = %q, want %q", answer, emptyReply)
		}
	})

	t.Run("missing lesson context defaults to the general one", func(t *testing.T) {
		inference := &fakeInference{reply: "ok"}
		svc := chat.NewService(inference, conf, testutil.NewLogger())

		svc.Ask(ctx, "hola", "")
		if want := "Contexto: General IA"; !strings.Contains(inference.lastReq.Prompt, want) {
			t.Errorf("prompt %q does not contain %q", inference.lastReq.Prompt, want)
		}
	})
}
