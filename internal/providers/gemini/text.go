package gemini

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// InlineImage is a base64-encoded reference image attached to a text request.
type InlineImage struct {
	Data     string
	MimeType string
}

// TextRequest describes one schema-constrained generateContent call.
type TextRequest struct {
	Prompt            string
	SystemInstruction string
	ResponseSchema    any
	Image             *InlineImage
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
	ResponseSchema   any    `json:"responseSchema,omitempty"`
}

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason,omitempty"`
	} `json:"candidates"`
}

// GenerateStructured asks the text model for a document conforming to the
// request's response schema and returns the raw candidate text. An empty
// return with nil error means the backend produced no usable text; the caller
// decides how to classify that.
func (c *Client) GenerateStructured(ctx context.Context, req TextRequest) (string, error) {
	parts := []part{{Text: req.Prompt}}
	if req.Image != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: req.Image.MimeType,
			Data:     req.Image.Data,
		}})
	}

	payload := generateContentRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.ResponseSchema,
		},
	}
	if req.SystemInstruction != "" {
		payload.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}

	var out generateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.textModel))
	if err := c.invoke(ctx, path, payload, &out); err != nil {
		return "", err
	}

	for _, candidate := range out.Candidates {
		for _, p := range candidate.Content.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return p.Text, nil
			}
		}
	}

	c.logger.Warn().Str("model", c.textModel).Msg("gemini: generateContent returned no text")
	return "", nil
}
