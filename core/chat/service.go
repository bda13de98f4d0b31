// Package chat implements the AI tutor behind the chat widget.
//
// The chat surface has no error-display affordance, so Ask never fails:
// any underlying problem is masked with a fixed apology string. Each call
// sends only the latest question; multi-turn context is a known functional
// limitation, not a bug.
package chat

import (
	"context"
	"fmt"

	"github.com/educatesobreia/backend/core"
)

const (
	persona = "Eres 'Nexus', el núcleo de inteligencia de EducateSobreIA. " +
		"Tu tono es motivador, futurista y altamente técnico pero comprensible. Usa Markdown."

	defaultContext = "General IA"

	emptyReply    = "Error al conectar con la red neuronal."
	fallbackReply = "Mi red está experimentando interferencias. Intenta de nuevo en unos nano-segundos."
)

type Service struct {
	inference core.InferenceClient
	conf      *core.Config
	logger    core.Logger
}

func NewService(inference core.InferenceClient, conf *core.Config, logger core.Logger) *Service {
	return &Service{inference: inference, conf: conf, logger: logger}
}

// Ask forwards the student's question to the inference service and always
// returns displayable text.
func (svc *Service) Ask(ctx context.Context, question, lessonContext string) string {
	if lessonContext == "" {
		lessonContext = defaultContext
	}

	req := core.GenerationRequest{
		Prompt: fmt.Sprintf(
			"Actúa como un tutor experto de IA futurista. Responde a la pregunta del estudiante.\n"+
				"Contexto: %s\nPregunta: %s",
			lessonContext, question),
		SystemInstruction: persona,
		Temperature:       svc.conf.Gemini.Temperature,
	}

	answer, err := svc.inference.GenerateText(ctx, req)
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("asking tutor: %v", err), err)
		return fallbackReply
	}
	if answer == "" {
		return emptyReply
	}
	return answer
}
