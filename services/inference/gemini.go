package inferencesvc

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/educatesobreia/backend/core"
)

type geminiClient struct {
	client *genai.Client
	model  string
}

var _ core.InferenceClient = (*geminiClient)(nil)

// NewGeminiClient connects to the Gemini API. Callers own failure policy:
// every consumer of core.InferenceClient in this app falls back to canned
// copy when generation fails.
func NewGeminiClient(ctx context.Context, conf *core.Config) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  conf.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}
	return &geminiClient{client: client, model: conf.Gemini.Model}, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, req core.GenerationRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(req.Temperature)
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", errors.Wrap(err, "generating content")
	}
	return strings.TrimSpace(resp.Text()), nil
}
