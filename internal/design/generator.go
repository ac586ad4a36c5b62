package design

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/catalog"
	"server/internal/infra"
	"server/internal/providers/gemini"
)

// TextBackend is the text-generation side of the Gemini client.
type TextBackend interface {
	GenerateStructured(ctx context.Context, req gemini.TextRequest) (string, error)
}

// ReferenceImage is an optional user-supplied image, carried as the base64
// payload received from the transport.
type ReferenceImage struct {
	Data     string
	MimeType string
}

// GeneratorOptions configures a Generator.
type GeneratorOptions struct {
	Backend     TextBackend
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *infra.Logger
}

// Generator is the structured-content stage: it turns a design type and a
// user prompt into a schema-conforming document via the text backend.
type Generator struct {
	backend TextBackend
	retry   retryConfig
	logger  *infra.Logger
}

// NewGenerator constructs a Generator.
func NewGenerator(opts GeneratorOptions) *Generator {
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Generator{
		backend: opts.Backend,
		retry:   retryConfig{MaxAttempts: opts.MaxAttempts, BaseDelay: opts.BaseDelay},
		logger:  logger,
	}
}

// Generate performs one retried backend call and parses the result. The
// caller guarantees that userPrompt is non-empty unless ref is present.
func (g *Generator) Generate(ctx context.Context, dt *catalog.DesignType, userPrompt string, ref *ReferenceImage) (Document, error) {
	req := gemini.TextRequest{
		Prompt:            fmt.Sprintf("User Prompt: \"%s\".\n\nTask: %s", userPrompt, dt.Description),
		SystemInstruction: dt.SystemInstruction,
		ResponseSchema:    dt.Schema,
	}
	if ref != nil {
		req.Image = &gemini.InlineImage{Data: ref.Data, MimeType: ref.MimeType}
	}

	started := time.Now()
	raw, err := withRetry(ctx, g.retry, func(ctx context.Context) (string, error) {
		return g.backend.GenerateStructured(ctx, req)
	})
	if err != nil {
		g.logger.Error().Err(err).Str("design_type", dt.ID).Msg("design: structured generation failed")
		return nil, err
	}

	if strings.TrimSpace(raw) == "" {
		g.logger.Error().Str("design_type", dt.ID).Msg("design: backend returned empty response")
		return nil, ErrEmptyResponse
	}

	doc, err := parseDocument(raw)
	if err != nil {
		g.logger.Error().Err(err).Str("design_type", dt.ID).Msg("design: backend response did not parse")
		return nil, err
	}

	g.logger.Debug().
		Str("design_type", dt.ID).
		Dur("elapsed", time.Since(started)).
		Msg("design: structured document generated")
	return doc, nil
}
