package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"orbital/internal/config"
	"orbital/internal/core"
	"orbital/internal/events"
	"orbital/internal/http/handler"
	"orbital/internal/http/handler/middleware"
	"orbital/internal/http/payload"
	"orbital/internal/http/server"
	"orbital/internal/ledger"
	"orbital/internal/nasa"
	"orbital/internal/scheduler"
	"orbital/internal/telemetry"
	"orbital/pkg/log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type eventPublisher interface {
	core.EventPublisher
	io.Closer
}

func Start(args []string) error {
	config, err := config.NewApp(args)
	if err != nil {
		return err
	}

	logger := log.NewZapLogger("orbital", log.ParseLevel(config.LogLevel))
	defer func() {
		_ = logger.Sync()
	}()

	// ledger
	store := ledger.NewStore(ledger.DefaultSeed(time.Now().UTC()))
	confirmations := scheduler.New(logger.Named("scheduler"), config.ConfirmationDelay)

	publisher := newPublisher(logger, config)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Errorw("failed to close event publisher", "error", err)
		}
	}()

	ledgerService := core.NewLedger(
		logger.Named("ledger"),
		store,
		confirmations,
		publisher,
		core.SystemRandom{})

	// runs before the publisher closes: drop pending confirmations, then let
	// in-flight events finish
	defer func() {
		confirmations.Stop()
		ledgerService.Wait()
	}()

	// telemetry and space data
	generator := telemetry.NewGenerator(nil)
	spaceData := nasa.NewClient(
		&http.Client{Timeout: config.UpstreamTimeout},
		ratelimit.New(config.UpstreamRPS),
		nasa.Config{
			BaseURL:        config.NASABaseURL,
			APIKey:         config.NASAAPIKey,
			ISSPositionURL: config.ISSPositionURL,
		})

	// handlers
	ledgerHlr := handler.NewLedgerHandler(logger, payload.Decoder{}, ledgerService)
	telemetryHlr := handler.NewTelemetryHandler(logger, generator, spaceData)

	// register routes
	mux := http.NewServeMux()
	ledgerHlr.Register(mux)
	telemetryHlr.Register(mux)
	mux.HandleFunc(handler.Health, handler.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware, innermost first; metrics must see the request the mux matched
	hdlr := middleware.NewMetricsMiddleware().Metrics(mux)
	hdlr = middleware.NewRecoveryMiddleware(logger).Recovery(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = handlers.CompressHandler(hdlr)
	hdlr = cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newPublisher(logger *zap.SugaredLogger, config config.App) eventPublisher {
	if !config.EventsEnabled() {
		logger.Infow("no kafka brokers configured, ledger events are not streamed")
		return events.NopPublisher{}
	}

	logger.Infow("streaming ledger events",
		"brokers", config.KafkaBrokers,
		"topic", config.KafkaTopic)
	writer := events.NewKafkaWriter(config.KafkaBrokers, config.KafkaTopic)
	return events.NewKafkaPublisher(logger.Named("events"), writer)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		_ = server.Shutdown()
		return err
	}

	if err := server.Shutdown(); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
