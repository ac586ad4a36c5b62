package design

import (
	"context"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"server/internal/catalog"
	"server/internal/infra"
)

// Engine walks a structured document, finds every non-empty string field
// whose key ends in "Prompt" (case-insensitive, at any depth, including
// inside sequences) and adds a sibling field with the suffix replaced by
// "Url" holding the resolved image reference. Resolution is additive: no
// existing field is removed or renamed, and the input tree is not mutated.
type Engine struct {
	images ImageSource
	logger *infra.Logger
}

// NewEngine constructs an Engine.
func NewEngine(images ImageSource, logger *infra.Logger) *Engine {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Engine{images: images, logger: logger}
}

var promptSuffix = regexp.MustCompile(`(?i)prompt$`)

// urlKeyFor derives the companion key: the trailing "Prompt" is replaced by a
// literal "Url" while the prefix keeps its original casing.
func urlKeyFor(key string) string {
	return promptSuffix.ReplaceAllLiteralString(key, "Url")
}

func isPromptKey(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), "prompt")
}

// Resolve returns a new document with every prompt field resolved. Fields at
// the same mapping level resolve concurrently; nested levels complete before
// their parent level dispatches. Individual image failures degrade inside the
// ImageSource, so Resolve itself cannot fail.
func (e *Engine) Resolve(ctx context.Context, doc Document, designTypeID string) Document {
	resolved, _ := e.resolveValue(ctx, doc, designTypeID).(map[string]any)
	return resolved
}

func (e *Engine) resolveValue(ctx context.Context, node any, designTypeID string) any {
	switch v := node.(type) {
	case map[string]any:
		return e.resolveMapping(ctx, v, designTypeID)
	case []any:
		out := make([]any, len(v))
		g, gctx := errgroup.WithContext(ctx)
		for i, elem := range v {
			i, elem := i, elem
			g.Go(func() error {
				out[i] = e.resolveValue(gctx, elem, designTypeID)
				return nil
			})
		}
		// Tasks only ever return nil; Wait is a barrier, not error handling.
		_ = g.Wait()
		return out
	default:
		return node
	}
}

func (e *Engine) resolveMapping(ctx context.Context, m map[string]any, designTypeID string) map[string]any {
	out := make(map[string]any, len(m)+1)

	// Children first: nested prompt fields are fully resolved before this
	// level's own fields are dispatched.
	for key, value := range m {
		switch value.(type) {
		case map[string]any, []any:
			out[key] = e.resolveValue(ctx, value, designTypeID)
		default:
			out[key] = value
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for key, value := range m {
		// Only non-empty string leaves are prompt fields. An object that
		// happens to be named somethingPrompt was already handled by the
		// recursion above and intentionally does not trigger resolution.
		prompt, ok := value.(string)
		if !ok || prompt == "" || !isPromptKey(key) {
			continue
		}

		urlKey := urlKeyFor(key)
		ratio := catalog.AspectRatioFor(designTypeID, key)
		e.logger.Debug().
			Str("design_type", designTypeID).
			Str("field", key).
			Str("aspect_ratio", string(ratio)).
			Msg("design: resolving prompt field")

		g.Go(func() error {
			ref := e.images.ResolveImage(gctx, prompt, ratio)
			mu.Lock()
			out[urlKey] = ref
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}
