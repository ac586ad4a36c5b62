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
)

// GenerationRequest is one user action: a design type, a prompt and an
// optional reference image. The prompt may be empty only when a reference
// image is supplied.
type GenerationRequest struct {
	DesignTypeID   string
	Prompt         string
	ReferenceImage *ReferenceImage
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	Catalog        *catalog.Catalog
	Generator      *Generator
	Engine         *Engine
	RequestTimeout time.Duration
	Logger         *infra.Logger
}

// Service sequences the two pipeline stages: structured content generation,
// then prompt resolution. Both stages are read-only with respect to external
// state, so a failure needs no rollback: the request simply surfaces an
// error and no partial document ever reaches the caller.
type Service struct {
	catalog   *catalog.Catalog
	generator *Generator
	engine    *Engine
	timeout   time.Duration
	logger    *infra.Logger
}

// NewService constructs a Service.
func NewService(opts ServiceOptions) *Service {
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Service{
		catalog:   opts.Catalog,
		generator: opts.Generator,
		engine:    opts.Engine,
		timeout:   opts.RequestTimeout,
		logger:    logger,
	}
}

// ProduceDesign validates the request, generates the structured document and
// resolves its prompt fields. Validation failures are reported before any
// backend call is made. When the request timeout expires mid-resolution,
// pending image fields degrade to placeholders instead of blocking.
func (s *Service) ProduceDesign(ctx context.Context, req GenerationRequest) (Document, error) {
	dt, ok := s.catalog.Find(req.DesignTypeID)
	if !ok {
		return nil, fmt.Errorf("%w: invalid design type: %s", ErrInvalidInput, req.DesignTypeID)
	}
	if strings.TrimSpace(req.Prompt) == "" && req.ReferenceImage == nil {
		return nil, fmt.Errorf("%w: a prompt or a reference image is required", ErrInvalidInput)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	doc, err := s.generator.Generate(ctx, dt, req.Prompt, req.ReferenceImage)
	if err != nil {
		return nil, err
	}

	resolved := s.engine.Resolve(ctx, doc, dt.ID)

	s.logger.Info().
		Str("design_type", dt.ID).
		Dur("elapsed", time.Since(started)).
		Msg("design: request completed")
	return resolved, nil
}
