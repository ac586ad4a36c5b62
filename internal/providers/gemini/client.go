package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client is a thin facade over the Gemini REST API covering the two calls
// this service makes: schema-constrained text generation and single-image
// generation. It holds no per-request state and is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewClient constructs a Gemini client. The API key is mandatory: its absence
// is a process-startup failure, not something to discover per request.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	textModel := strings.TrimSpace(opts.TextModel)
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}
	imageModel := strings.TrimSpace(opts.ImageModel)
	if imageModel == "" {
		imageModel = "imagen-4.0-generate-001"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		textModel:  textModel,
		imageModel: imageModel,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// APIError is a non-2xx response from the Gemini API.
type APIError struct {
	Code    int
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gemini status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("gemini status %d", e.Code)
}

// Transient reports whether the failure is worth retrying: the backend
// declared itself unavailable or overloaded, or a 503 signal is embedded in
// the error body.
func (e *APIError) Transient() bool {
	if e.Code == http.StatusServiceUnavailable {
		return true
	}
	if strings.EqualFold(e.Status, "UNAVAILABLE") {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "503") || strings.Contains(msg, "overloaded")
}

// transportError is a network-level failure before any API response arrived.
type transportError struct {
	err error
}

func (e *transportError) Error() string   { return fmt.Sprintf("invoke gemini: %v", e.err) }
func (e *transportError) Unwrap() error   { return e.err }
func (e *transportError) Transient() bool { return true }

type errorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Status  string `json:"status,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Code: resp.StatusCode}
		var envelope errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
			apiErr.Status = envelope.Error.Status
			apiErr.Message = envelope.Error.Message
			if envelope.Error.Code != 0 {
				apiErr.Code = envelope.Error.Code
			}
		} else if data, _ := io.ReadAll(resp.Body); len(data) > 0 {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}
