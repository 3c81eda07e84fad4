package models

// AIToolRequest is the body of POST /api/ai-tools. Context carries whatever
// the tool needs (organization name, category, campaign title, ...).
type AIToolRequest struct {
	Tool    string         `json:"tool" binding:"required"`
	Context map[string]any `json:"context"`
	// Apply persists the returned fields into the mini-site configuration.
	// Only fields the tool actually returned are written.
	Apply bool `json:"apply"`
}

// AIToolResult wraps a tool's output. Every field inside Result is optional;
// callers must never assume a key is present.
type AIToolResult struct {
	Result map[string]any `json:"result"`
}
