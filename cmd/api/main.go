package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"server/internal/catalog"
	"server/internal/design"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/providers/gemini"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client, err := gemini.NewClient(gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct gemini client")
	}

	cat := catalog.Default()
	generator := design.NewGenerator(design.GeneratorOptions{
		Backend: client,
		Logger:  &logger,
	})
	images := design.NewImageResolver(design.ImageResolverOptions{
		Backend:  client,
		Limiter:  rate.NewLimiter(rate.Limit(cfg.ImageRatePerSecond), cfg.ImageRateBurst),
		CacheTTL: cfg.ImageCacheTTL,
		Logger:   &logger,
	})
	engine := design.NewEngine(images, &logger)
	service := design.NewService(design.ServiceOptions{
		Catalog:        cat,
		Generator:      generator,
		Engine:         engine,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         &logger,
	})

	app := handlers.NewApp(cat, service, logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
