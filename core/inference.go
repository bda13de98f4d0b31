package core

import "context"

// GenerationRequest describes a single text-generation round trip.
// The full response is awaited before use; there is no streaming.
type GenerationRequest struct {
	Prompt            string
	SystemInstruction string
	Temperature       float32
}

// InferenceClient is any service that can generate text from a prompt.
// Callers must treat failures as non-fatal; nothing in the app depends on
// a generated reply to make progress.
type InferenceClient interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}
