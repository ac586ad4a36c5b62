package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"server/internal/catalog"
	"server/internal/design"
	"server/internal/infra"
	"server/internal/middleware"
)

// DesignProducer is the orchestrator surface the transport layer depends on.
type DesignProducer interface {
	ProduceDesign(ctx context.Context, req design.GenerationRequest) (design.Document, error)
}

// App carries the handlers' dependencies.
type App struct {
	Catalog *catalog.Catalog
	Designs DesignProducer
	Logger  infra.Logger
}

// NewApp constructs the handler container.
func NewApp(cat *catalog.Catalog, designs DesignProducer, logger infra.Logger) *App {
	return &App{Catalog: cat, Designs: designs, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorEnvelope{Error: message})
}

func (a *App) requestLogger(r *http.Request) infra.Logger {
	return a.Logger.With().
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Logger()
}
