package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// App holds the runtime settings of the dashboard backend. Every option can be
// passed as a flag or through its environment variable.
type App struct {
	Port              string        `long:"port" env:"API_PORT" default:"8080" description:"HTTP listen port"`
	NASAAPIKey        string        `long:"nasa-api-key" env:"NASA_API_KEY" default:"DEMO_KEY" description:"api.nasa.gov key"`
	NASABaseURL       string        `long:"nasa-base-url" env:"NASA_BASE_URL" default:"https://api.nasa.gov" description:"space data API base url"`
	ISSPositionURL    string        `long:"iss-position-url" env:"ISS_POSITION_URL" default:"http://api.open-notify.org/iss-now.json" description:"ISS position endpoint"`
	UpstreamRPS       int           `long:"upstream-rps" env:"UPSTREAM_RPS" default:"5" description:"max upstream requests per second"`
	UpstreamTimeout   time.Duration `long:"upstream-timeout" env:"UPSTREAM_TIMEOUT" default:"10s" description:"upstream request timeout"`
	ConfirmationDelay time.Duration `long:"confirmation-delay" env:"CONFIRMATION_DELAY" default:"3s" description:"delay before a pending transaction is confirmed"`
	KafkaBrokers      []string      `long:"kafka-broker" env:"KAFKA_BROKERS" env-delim:"," description:"kafka brokers for ledger events, disabled when empty"`
	KafkaTopic        string        `long:"kafka-topic" env:"KAFKA_LEDGER_TOPIC" default:"orbital.ledger.events" description:"ledger events topic"`
	AllowedOrigins    []string      `long:"cors-origin" env:"CORS_ALLOWED_ORIGINS" env-delim:"," default:"*" description:"allowed CORS origins"`
	LogLevel          string        `long:"log-level" env:"LOG_LEVEL" default:"info" description:"log level"`
}

// NewApp parses command line arguments and environment variables into App.
func NewApp(args []string) (App, error) {
	var app App

	parser := flags.NewParser(&app, flags.Default&^flags.PrintErrors)
	if _, err := parser.ParseArgs(args); err != nil {
		return App{}, fmt.Errorf("parse arguments: %w", err)
	}

	if err := app.validate(); err != nil {
		return App{}, err
	}

	return app, nil
}

func (a App) validate() error {
	if a.Port == "" {
		return fmt.Errorf("%w: port is required", ErrInvalidConfig)
	}
	if a.UpstreamRPS <= 0 {
		return fmt.Errorf("%w: upstream rps must be positive, got %d", ErrInvalidConfig, a.UpstreamRPS)
	}
	if a.ConfirmationDelay < 0 {
		return fmt.Errorf("%w: confirmation delay must not be negative", ErrInvalidConfig)
	}
	if a.UpstreamTimeout <= 0 {
		return fmt.Errorf("%w: upstream timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// EventsEnabled reports whether ledger events should be streamed to kafka.
func (a App) EventsEnabled() bool {
	return len(a.KafkaBrokers) > 0
}
