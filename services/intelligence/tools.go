package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// toolPrompt builds the instruction for one tool. All tools ask for a single
// JSON object so the result can be merged field by field; missing keys are
// expected and fine.
type toolPrompt struct {
	instruction string
	resultKeys  []string
}

var toolPrompts = map[string]toolPrompt{
	"hero_copy": {
		instruction: "Scrie un titlu scurt și percutant, o descriere de 2-3 fraze și un text de buton pentru pagina principală a unui ONG românesc.",
		resultKeys:  []string{"heroTitle", "heroDescription", "heroCtaText"},
	},
	"about_text": {
		instruction: "Scrie secțiunile Despre noi, Misiune și Impact pentru pagina publică a unui ONG românesc, pe un ton cald și credibil.",
		resultKeys:  []string{"aboutText", "missionText", "impactText"},
	},
	"seo_meta": {
		instruction: "Scrie un titlu SEO (max 60 caractere), o meta-descriere (max 155 caractere) și cuvinte cheie separate prin virgulă pentru pagina unui ONG românesc.",
		resultKeys:  []string{"seoTitle", "seoDescription", "seoKeywords"},
	},
	"press_release": {
		instruction: "Scrie un comunicat de presă profesionist în limba română pentru campania descrisă, cu titlu și corp.",
		resultKeys:  []string{"title", "body"},
	},
	"sponsor_email": {
		instruction: "Scrie un e-mail de prospectare către un potențial sponsor corporate, în limba română, personalizat pe profilul companiei.",
		resultKeys:  []string{"subject", "body"},
	},
}

// KnownTool reports whether a tool name is supported.
func KnownTool(tool string) bool {
	_, ok := toolPrompts[tool]
	return ok
}

func (s *DefaultAIService) RunTool(ctx context.Context, tool string, toolCtx map[string]any) (map[string]any, error) {
	tp, ok := toolPrompts[tool]
	if !ok {
		return nil, fmt.Errorf("unknown AI tool %q", tool)
	}

	ctxJSON, err := json.Marshal(toolCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool context: %w", err)
	}

	var prompt strings.Builder
	prompt.WriteString(tp.instruction)
	prompt.WriteString("\n\nContext despre organizație (JSON): ")
	prompt.Write(ctxJSON)
	prompt.WriteString("\n\nRăspunde DOAR cu un obiect JSON cu cheile: ")
	prompt.WriteString(strings.Join(tp.resultKeys, ", "))
	prompt.WriteString(". Fără alt text în jurul obiectului.")

	raw, err := s.Generator.GenerateContent(ctx, prompt.String())
	if err != nil {
		return nil, err
	}
	return parseToolResult(raw, tp.resultKeys)
}

// parseToolResult extracts the JSON object from the model output, tolerating
// code fences and surrounding prose, and keeps only the expected keys.
func parseToolResult(raw string, allowed []string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("model did not return a JSON object")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = true
	}
	result := make(map[string]any)
	for k, v := range parsed {
		if allowedSet[k] {
			result[k] = v
		}
	}
	return result, nil
}
