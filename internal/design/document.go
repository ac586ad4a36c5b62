package design

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is the JSON-like tree produced by the text-generation stage:
// mappings, sequences and scalars exactly as encoding/json decodes them.
type Document = map[string]any

// parseDocument extracts the JSON object from a model response. Models
// occasionally wrap their output in markdown fences or stray prose even when
// a response schema was supplied, so the payload is cleaned before decoding.
func parseDocument(raw string) (Document, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var doc Document
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return doc, nil
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
