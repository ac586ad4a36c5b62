package design

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server/internal/catalog"
	"server/internal/providers/gemini"
)

func newTestService(t *testing.T, text *fakeTextBackend, images ImageSource) *Service {
	t.Helper()
	return NewService(ServiceOptions{
		Catalog:   catalog.Default(),
		Generator: NewGenerator(GeneratorOptions{Backend: text, BaseDelay: time.Millisecond}),
		Engine:    NewEngine(images, nil),
	})
}

func TestProduceDesignUnknownType(t *testing.T) {
	text := &fakeTextBackend{fn: func(int, gemini.TextRequest) (string, error) {
		return "{}", nil
	}}
	images := &fakeImageSource{}
	svc := newTestService(t, text, images)

	_, err := svc.ProduceDesign(context.Background(), GenerationRequest{
		DesignTypeID: "does-not-exist",
		Prompt:       "anything",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, text.calls, "validation must fail before any backend call")
	assert.Equal(t, 0, images.calls())
}

func TestProduceDesignRequiresPromptOrImage(t *testing.T) {
	text := &fakeTextBackend{fn: func(int, gemini.TextRequest) (string, error) {
		return "{}", nil
	}}
	svc := newTestService(t, text, &fakeImageSource{})

	_, err := svc.ProduceDesign(context.Background(), GenerationRequest{
		DesignTypeID: "logo",
		Prompt:       "   ",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, text.calls)

	// A reference image alone is a valid request.
	_, err = svc.ProduceDesign(context.Background(), GenerationRequest{
		DesignTypeID:   "logo",
		ReferenceImage: &ReferenceImage{Data: "aGVsbG8=", MimeType: "image/png"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, text.calls)
}

func TestProduceDesignBusinessCard(t *testing.T) {
	text := &fakeTextBackend{fn: func(int, gemini.TextRequest) (string, error) {
		return `{
			"name": "Jane Doe",
			"jobTitle": "Florist",
			"phone": "+1 555 0100",
			"email": "jane@example.com",
			"website": "example.com",
			"backgroundImagePrompt": "soft watercolor flowers"
		}`, nil
	}}
	images := &fakeImageSource{}
	svc := newTestService(t, text, images)

	doc, err := svc.ProduceDesign(context.Background(), GenerationRequest{
		DesignTypeID: "business-card",
		Prompt:       "cards for a florist",
	})
	require.NoError(t, err)

	assert.Len(t, doc, 7, "one url field added, nothing removed")
	assert.Equal(t, "Jane Doe", doc["name"])
	assert.Equal(t, "soft watercolor flowers", doc["backgroundImagePrompt"])
	assert.Equal(t, "url:soft watercolor flowers", doc["backgroundImageUrl"])

	require.Equal(t, 1, images.calls())
	assert.Equal(t, catalog.RatioTall, images.ratios[0], "business cards render portrait")
}

func TestProduceDesignSurfacesGenerationErrors(t *testing.T) {
	text := &fakeTextBackend{fn: func(int, gemini.TextRequest) (string, error) {
		return "", transientErr{msg: "overloaded"}
	}}
	images := &fakeImageSource{}
	svc := newTestService(t, text, images)

	_, err := svc.ProduceDesign(context.Background(), GenerationRequest{
		DesignTypeID: "logo",
		Prompt:       "p",
	})
	require.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, 0, images.calls(), "resolution must not start after a failed generation")
}

func TestProduceDesignTimeoutDegradesImages(t *testing.T) {
	text := &fakeTextBackend{fn: func(int, gemini.TextRequest) (string, error) {
		return `{"imagePrompt": "slow image"}`, nil
	}}
	backend := &fakeImageBackend{fn: func(_ int, req gemini.ImageRequest) (*gemini.ImageData, error) {
		return nil, context.DeadlineExceeded
	}}
	images := NewImageResolver(ImageResolverOptions{Backend: backend, BaseDelay: time.Millisecond})
	svc := NewService(ServiceOptions{
		Catalog:        catalog.Default(),
		Generator:      NewGenerator(GeneratorOptions{Backend: text}),
		Engine:         NewEngine(images, nil),
		RequestTimeout: 50 * time.Millisecond,
	})

	doc, err := svc.ProduceDesign(context.Background(), GenerationRequest{
		DesignTypeID: "logo",
		Prompt:       "p",
	})
	require.NoError(t, err, "image failures degrade instead of failing the request")
	assert.Equal(t, PlaceholderRef(catalog.RatioSquare), doc["imageUrl"])
}
