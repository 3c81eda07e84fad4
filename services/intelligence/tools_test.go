package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	output string
	err    error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.output, s.err
}

func TestRunToolParsesFencedJSON(t *testing.T) {
	svc := &DefaultAIService{Generator: &stubGenerator{
		output: "```json\n{\"heroTitle\": \"Împreună pentru păduri\", \"heroDescription\": \"...\", \"extraKey\": 1}\n```",
	}}

	result, err := svc.RunTool(context.Background(), "hero_copy", map[string]any{"name": "Verde"})
	require.NoError(t, err)

	assert.Equal(t, "Împreună pentru păduri", result["heroTitle"])
	// The model may return fewer keys than asked; it may not invent extras.
	assert.NotContains(t, result, "heroCtaText")
	assert.NotContains(t, result, "extraKey")
}

func TestRunToolRejectsNonJSON(t *testing.T) {
	svc := &DefaultAIService{Generator: &stubGenerator{output: "Desigur! Iată textul tău."}}

	_, err := svc.RunTool(context.Background(), "hero_copy", nil)
	assert.Error(t, err)
}

func TestRunToolUnknownTool(t *testing.T) {
	svc := &DefaultAIService{Generator: &stubGenerator{output: "{}"}}

	_, err := svc.RunTool(context.Background(), "world_domination", nil)
	assert.Error(t, err)
	assert.False(t, KnownTool("world_domination"))
	assert.True(t, KnownTool("press_release"))
}
