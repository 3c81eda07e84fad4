package ai

import (
	"context"
)

// AIService generates dashboard copy through named tools. Every tool returns
// a partial map; callers must treat any key as optionally absent, because the
// model is free to return less than asked.
type AIService interface {
	RunTool(ctx context.Context, tool string, toolCtx map[string]any) (map[string]any, error)
}

// TextGenerator is the raw model behind the tools.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultAIService is the production implementation.
type DefaultAIService struct {
	Generator TextGenerator
}

// NewDefaultAIService wires a Gemini-backed service.
func NewDefaultAIService(apiKey string) *DefaultAIService {
	return &DefaultAIService{Generator: NewGeminiClient(apiKey)}
}
