package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
)

// ImageRequest describes one image generation call.
type ImageRequest struct {
	Prompt      string
	AspectRatio string
}

// ImageData is a generated raster image.
type ImageData struct {
	Data     []byte
	MimeType string
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
	OutputMimeType string `json:"outputMimeType,omitempty"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType,omitempty"`
	} `json:"predictions"`
}

// GenerateImage requests exactly one PNG at the given aspect ratio from the
// image model and returns its decoded bytes.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*ImageData, error) {
	payload := predictRequest{
		Instances: []predictInstance{{Prompt: req.Prompt}},
		Parameters: predictParameters{
			SampleCount:    1,
			AspectRatio:    req.AspectRatio,
			OutputMimeType: "image/png",
		},
	}

	var out predictResponse
	path := fmt.Sprintf("/models/%s:predict", url.PathEscape(c.imageModel))
	if err := c.invoke(ctx, path, payload, &out); err != nil {
		return nil, err
	}

	for _, prediction := range out.Predictions {
		if prediction.BytesBase64Encoded == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(prediction.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("decode image bytes: %w", err)
		}
		mimeType := prediction.MimeType
		if mimeType == "" {
			mimeType = "image/png"
		}
		return &ImageData{Data: data, MimeType: mimeType}, nil
	}

	return nil, errors.New("no image content returned")
}
