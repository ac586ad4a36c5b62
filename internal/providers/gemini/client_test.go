package gemini

import (
	"errors"
	"testing"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Options{}); err == nil {
		t.Fatalf("expected error when api key missing")
	}
	if _, err := NewClient(Options{APIKey: "   "}); err == nil {
		t.Fatalf("expected error for blank api key")
	}
}

func TestAPIErrorTransient(t *testing.T) {
	tests := []struct {
		name string
		err  APIError
		want bool
	}{
		{"503 code", APIError{Code: 503}, true},
		{"unavailable status", APIError{Code: 500, Status: "UNAVAILABLE"}, true},
		{"overloaded message", APIError{Code: 429, Message: "The model is overloaded"}, true},
		{"embedded 503", APIError{Code: 500, Message: "upstream returned 503"}, true},
		{"bad request", APIError{Code: 400, Status: "INVALID_ARGUMENT", Message: "bad schema"}, false},
		{"permission denied", APIError{Code: 403, Status: "PERMISSION_DENIED"}, false},
	}
	for _, tc := range tests {
		if got := tc.err.Transient(); got != tc.want {
			t.Errorf("%s: Transient() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTransportErrorTransient(t *testing.T) {
	err := &transportError{err: errors.New("connection refused")}
	if !err.Transient() {
		t.Fatalf("transport errors must classify as transient")
	}
	if !errors.Is(err, err.err) && err.Unwrap() == nil {
		t.Fatalf("transport error must unwrap")
	}
}
