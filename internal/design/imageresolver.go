package design

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"server/internal/catalog"
	"server/internal/infra"
	"server/internal/providers/gemini"
)

// ImageBackend is the image-generation side of the Gemini client.
type ImageBackend interface {
	GenerateImage(ctx context.Context, req gemini.ImageRequest) (*gemini.ImageData, error)
}

// ImageSource resolves an image prompt into a displayable reference. The
// resolution engine depends on this rather than on a concrete resolver.
type ImageSource interface {
	ResolveImage(ctx context.Context, prompt string, ratio catalog.AspectRatio) string
}

// ImageResolverOptions configures an ImageResolver.
type ImageResolverOptions struct {
	Backend     ImageBackend
	Limiter     *rate.Limiter
	CacheTTL    time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *infra.Logger
}

// ImageResolver calls the image backend and encodes the result as an inline
// data URI. Identical (prompt, ratio) pairs within the cache TTL reuse the
// previous result instead of re-billing the backend.
type ImageResolver struct {
	backend ImageBackend
	limiter *rate.Limiter
	cache   *gocache.Cache
	retry   retryConfig
	logger  *infra.Logger
}

// NewImageResolver constructs an ImageResolver.
func NewImageResolver(opts ImageResolverOptions) *ImageResolver {
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ImageResolver{
		backend: opts.Backend,
		limiter: opts.Limiter,
		cache:   gocache.New(ttl, ttl*2),
		retry:   retryConfig{MaxAttempts: opts.MaxAttempts, BaseDelay: opts.BaseDelay},
		logger:  logger,
	}
}

// ResolveImage turns a prompt into an image reference. It never fails:
// backend errors, quota exhaustion and timeouts all degrade to a
// deterministic placeholder sized for the requested ratio. A design with one
// broken image is still worth returning.
func (r *ImageResolver) ResolveImage(ctx context.Context, prompt string, ratio catalog.AspectRatio) string {
	key := string(ratio) + "|" + prompt
	if cached, ok := r.cache.Get(key); ok {
		return cached.(string)
	}

	ref, err := r.generate(ctx, prompt, ratio)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("aspect_ratio", string(ratio)).
			Int("attempts", r.retry.withDefaults().MaxAttempts).
			Str("prompt", truncate(prompt, 120)).
			Msg("design: image generation failed, degrading to placeholder")
		return PlaceholderRef(ratio)
	}

	r.cache.Set(key, ref, gocache.DefaultExpiration)
	return ref
}

func (r *ImageResolver) generate(ctx context.Context, prompt string, ratio catalog.AspectRatio) (string, error) {
	img, err := withRetry(ctx, r.retry, func(ctx context.Context) (*gemini.ImageData, error) {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		return r.backend.GenerateImage(ctx, gemini.ImageRequest{
			Prompt:      prompt,
			AspectRatio: string(ratio),
		})
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageGeneration, err)
	}
	return fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data)), nil
}

// PlaceholderRef is the deterministic fallback reference for a failed image,
// sized to the requested aspect ratio and carrying a human-readable marker.
func PlaceholderRef(ratio catalog.AspectRatio) string {
	width, height := ratio.PlaceholderSize()
	marker := cases.Title(language.Und).String("image gen failed")
	return fmt.Sprintf("https://via.placeholder.com/%dx%d.png?text=%s",
		width, height, strings.ReplaceAll(marker, " ", "+"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
