package config

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Config holds every value the bot reads from the environment.
type Config struct {
	DatabaseDSN      string        `env:"DATABASE_DSN,required"`
	Port             string        `env:"PORT" envDefault:"8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	OwnerNumber      string        `env:"OWNER_NUMBER,required"`
	AdminNumbers     []string      `env:"ADMIN_NUMBERS" envSeparator:","`
	CommandPrefixes  string        `env:"COMMAND_PREFIXES" envDefault:"!/"`
	GatewayJWTSecret string        `env:"GATEWAY_JWT_SECRET,required"`
	BridgeURL        string        `env:"BRIDGE_URL"`
	AITimeout        time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init configures the process-wide logger. Call once at startup.
func Init(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// WithContext returns a logger carrying the request id when one is present.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return logrus.WithField("request_id", reqID)
	}
	return logrus.StandardLogger()
}

// JSON writes v as a JSON response body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode JSON response")
	}
}
