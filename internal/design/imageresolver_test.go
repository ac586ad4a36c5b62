package design

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server/internal/catalog"
	"server/internal/providers/gemini"
)

type fakeImageBackend struct {
	mu    sync.Mutex
	calls int
	reqs  []gemini.ImageRequest
	fn    func(call int, req gemini.ImageRequest) (*gemini.ImageData, error)
}

func (f *fakeImageBackend) GenerateImage(ctx context.Context, req gemini.ImageRequest) (*gemini.ImageData, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()
	return f.fn(call, req)
}

func TestResolveImageSuccess(t *testing.T) {
	raw := []byte("fake png bytes")
	backend := &fakeImageBackend{fn: func(int, gemini.ImageRequest) (*gemini.ImageData, error) {
		return &gemini.ImageData{Data: raw, MimeType: "image/png"}, nil
	}}
	resolver := NewImageResolver(ImageResolverOptions{Backend: backend})

	ref := resolver.ResolveImage(context.Background(), "a fox", catalog.RatioSquare)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(raw), ref)

	require.Equal(t, 1, backend.calls)
	assert.Equal(t, "a fox", backend.reqs[0].Prompt)
	assert.Equal(t, "1:1", backend.reqs[0].AspectRatio)
}

func TestResolveImageDegradesToPlaceholder(t *testing.T) {
	backend := &fakeImageBackend{fn: func(int, gemini.ImageRequest) (*gemini.ImageData, error) {
		return nil, errors.New("billing disabled")
	}}
	resolver := NewImageResolver(ImageResolverOptions{Backend: backend, BaseDelay: time.Millisecond})

	tests := []struct {
		ratio catalog.AspectRatio
		want  string
	}{
		{catalog.RatioSquare, "https://via.placeholder.com/800x800.png?text=Image+Gen+Failed"},
		{catalog.RatioWide, "https://via.placeholder.com/1280x720.png?text=Image+Gen+Failed"},
		{catalog.RatioTall, "https://via.placeholder.com/720x1280.png?text=Image+Gen+Failed"},
	}
	for _, tc := range tests {
		ref := resolver.ResolveImage(context.Background(), "p", tc.ratio)
		assert.Equal(t, tc.want, ref, "ratio %s", tc.ratio)
	}
}

func TestResolveImageRetriesTransientFailures(t *testing.T) {
	raw := []byte{1, 2, 3}
	backend := &fakeImageBackend{fn: func(call int, _ gemini.ImageRequest) (*gemini.ImageData, error) {
		if call == 1 {
			return nil, transientErr{msg: "the model is overloaded"}
		}
		return &gemini.ImageData{Data: raw, MimeType: "image/png"}, nil
	}}
	resolver := NewImageResolver(ImageResolverOptions{Backend: backend, BaseDelay: time.Millisecond})

	ref := resolver.ResolveImage(context.Background(), "p", catalog.RatioSquare)
	assert.Contains(t, ref, "data:image/png;base64,")
	assert.Equal(t, 2, backend.calls)
}

func TestResolveImageExhaustedRetriesDegrade(t *testing.T) {
	backend := &fakeImageBackend{fn: func(int, gemini.ImageRequest) (*gemini.ImageData, error) {
		return nil, transientErr{msg: "503"}
	}}
	resolver := NewImageResolver(ImageResolverOptions{Backend: backend, BaseDelay: time.Millisecond})

	ref := resolver.ResolveImage(context.Background(), "p", catalog.RatioWide)
	assert.Equal(t, PlaceholderRef(catalog.RatioWide), ref)
	assert.Equal(t, 3, backend.calls)
}

func TestResolveImageCachesByPromptAndRatio(t *testing.T) {
	backend := &fakeImageBackend{fn: func(int, gemini.ImageRequest) (*gemini.ImageData, error) {
		return &gemini.ImageData{Data: []byte{42}, MimeType: "image/png"}, nil
	}}
	resolver := NewImageResolver(ImageResolverOptions{Backend: backend, CacheTTL: time.Minute})

	first := resolver.ResolveImage(context.Background(), "same prompt", catalog.RatioSquare)
	second := resolver.ResolveImage(context.Background(), "same prompt", catalog.RatioSquare)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, backend.calls, "identical prompt and ratio must hit the cache")

	resolver.ResolveImage(context.Background(), "same prompt", catalog.RatioWide)
	assert.Equal(t, 2, backend.calls, "a different ratio is a different cache entry")
}

func TestResolveImagePlaceholdersAreNotCached(t *testing.T) {
	backend := &fakeImageBackend{fn: func(call int, _ gemini.ImageRequest) (*gemini.ImageData, error) {
		if call == 1 {
			return nil, errors.New("transient outage misclassified")
		}
		return &gemini.ImageData{Data: []byte{7}, MimeType: "image/png"}, nil
	}}
	resolver := NewImageResolver(ImageResolverOptions{Backend: backend, BaseDelay: time.Millisecond})

	first := resolver.ResolveImage(context.Background(), "p", catalog.RatioSquare)
	assert.Equal(t, PlaceholderRef(catalog.RatioSquare), first)

	second := resolver.ResolveImage(context.Background(), "p", catalog.RatioSquare)
	assert.Contains(t, second, "data:image/png;base64,", "a later attempt may succeed")
}
