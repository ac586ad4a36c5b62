package design

import (
	"errors"
	"strings"
)

// Error taxonomy for the generation pipeline. Input and text-generation
// failures are terminal for a request; image-generation failures never are,
// they degrade to placeholders at the field level.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrBackendUnavailable = errors.New("the model is overloaded, please try again later")
	ErrEmptyResponse      = errors.New("the model returned an empty response")
	ErrMalformedResponse  = errors.New("the model returned a response that is not valid JSON")
	ErrImageGeneration    = errors.New("image generation failed")
)

// IsTransient reports whether an error is worth retrying. Backend errors
// classify themselves via a Transient method; anything else is retried only
// when a 503 signal is embedded in its message.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var t interface{ Transient() bool }
	if errors.As(err, &t) {
		return t.Transient()
	}
	return strings.Contains(err.Error(), "503")
}
