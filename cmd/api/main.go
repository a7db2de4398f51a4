package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/riskcheck-api/internal/config"
	"github.com/noah-isme/riskcheck-api/internal/handler"
	"github.com/noah-isme/riskcheck-api/internal/middleware"
	"github.com/noah-isme/riskcheck-api/internal/observability"
	"github.com/noah-isme/riskcheck-api/internal/router"
	"github.com/noah-isme/riskcheck-api/internal/service"
	"github.com/noah-isme/riskcheck-api/internal/view"
	"github.com/noah-isme/riskcheck-api/pkg/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).Level(cfg.LogLevel).With().Timestamp().Str("service", cfg.AppName).Logger()

	classifier, err := model.LoadFile(cfg.ModelPath)
	if err != nil {
		log.Fatalf("failed to load model artifact %s: %v", cfg.ModelPath, err)
	}
	logger.Info().
		Str("model", classifier.Metadata().Name).
		Int("features", len(classifier.FeatureNames())).
		Float64("threshold", classifier.Threshold()).
		Msg("model loaded")

	assessmentService, err := service.NewAssessmentService(classifier, service.NewValidator(), logger)
	if err != nil {
		log.Fatalf("failed to create assessment service: %v", err)
	}

	renderer, err := view.NewRenderer(cfg.NoticeHTML)
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	assessmentHandler := handler.NewAssessmentHandler(assessmentService, renderer, cfg.AppName, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AssessmentHandler: assessmentHandler,
		MetricsHandler:    observability.MetricsHandler(),
		Model: handler.ModelInfo{
			Name:     classifier.Metadata().Name,
			Features: len(classifier.FeatureNames()),
		},
		SubmitLimiter: middleware.RateLimit("assessment", cfg.RateLimitMax, cfg.RateLimitWindow, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
