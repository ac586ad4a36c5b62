package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/design"
)

type designRequest struct {
	DesignTypeID string        `json:"designTypeId"`
	Prompt       string        `json:"prompt"`
	Image        *imagePayload `json:"image,omitempty"`
}

type imagePayload struct {
	Base64   string `json:"base64"`
	MimeType string `json:"mimeType"`
}

// GenerateDesign runs the full pipeline for one request and returns the
// resolved document as JSON.
func (a *App) GenerateDesign(w http.ResponseWriter, r *http.Request) {
	var req designRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	genReq := design.GenerationRequest{
		DesignTypeID: req.DesignTypeID,
		Prompt:       req.Prompt,
	}
	if req.Image != nil {
		if req.Image.Base64 == "" || req.Image.MimeType == "" {
			a.error(w, http.StatusBadRequest, "image requires base64 and mimeType")
			return
		}
		genReq.ReferenceImage = &design.ReferenceImage{
			Data:     req.Image.Base64,
			MimeType: req.Image.MimeType,
		}
	}

	doc, err := a.Designs.ProduceDesign(r.Context(), genReq)
	if err != nil {
		a.designError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, doc)
}

func (a *App) designError(w http.ResponseWriter, r *http.Request, err error) {
	logger := a.requestLogger(r)
	switch {
	case errors.Is(err, design.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, design.ErrBackendUnavailable):
		logger.Error().Err(err).Msg("handlers: text backend unavailable")
		a.error(w, http.StatusServiceUnavailable, design.ErrBackendUnavailable.Error())
	case errors.Is(err, design.ErrEmptyResponse), errors.Is(err, design.ErrMalformedResponse):
		logger.Error().Err(err).Msg("handlers: unusable backend response")
		a.error(w, http.StatusBadGateway, err.Error())
	default:
		logger.Error().Err(err).Msg("handlers: design generation failed")
		a.error(w, http.StatusInternalServerError, "an unknown server error occurred")
	}
}
