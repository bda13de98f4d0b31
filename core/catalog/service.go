package catalog

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core"
)

var ErrNotFound = errors.New("lesson not found")

// summaryFallback mirrors the product's fail-soft copy for summaries.
const summaryFallback = "Error en la síntesis de datos."

type Service struct {
	inference core.InferenceClient
	conf      *core.Config
	logger    core.Logger
}

func NewService(inference core.InferenceClient, conf *core.Config, logger core.Logger) *Service {
	return &Service{inference: inference, conf: conf, logger: logger}
}

func (svc *Service) All() []Lesson {
	out := make([]Lesson, len(lessons))
	copy(out, lessons)
	return out
}

// ByCategory filters the catalog; CategoryAll (or "") returns everything.
func (svc *Service) ByCategory(category string) []Lesson {
	category = core.CleanString(category)
	if category == "" || category == CategoryAll {
		return svc.All()
	}
	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

func (svc *Service) Get(id string) (Lesson, error) {
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, ErrNotFound
}

// Summarize asks the inference service for a 3-point summary of the lesson
// content. Always returns displayable text; failure yields the fallback copy.
func (svc *Service) Summarize(ctx context.Context, l Lesson) string {
	req := core.GenerationRequest{
		Prompt: fmt.Sprintf("Resume lo siguiente en 3 puntos clave con un toque futurista: %s", l.Content),
	}
	summary, err := svc.inference.GenerateText(ctx, req)
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("summarizing lesson %s: %v", l.ID, err), err)
		return summaryFallback
	}
	if summary == "" {
		return "Sin resumen disponible."
	}
	return summary
}
