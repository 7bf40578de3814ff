package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv       string   `env:"APP_ENV" default:"development"`
	ListenHost   string   `env:"LISTEN_HOST" default:"0.0.0.0"`
	Port         string   `env:"PORT" default:"8000"`
	MongoURL     string   `env:"MONGO_URL"`
	DatabaseName string   `env:"DATABASE_NAME" default:"config"`
	Environments []string `env:"ENVIRONMENTS" default:"dev,test,prod"`
	SecretFile   string   `env:"SECRET_FILE" default:"confgate.pass"`
	CertFile     string   `env:"CERT_FILE" default:"confgate_cert.pem"`
	KeyFile      string   `env:"KEY_FILE" default:"confgate_key.pem"`
	LogLevel     string   `env:"LOG_LEVEL" default:"info"`
	LogFormat    string   `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, &env.Options{SliceSep: ","}); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"MONGO_URL":     cfg.MongoURL,
		"SECRET_FILE":   cfg.SecretFile,
		"CERT_FILE":     cfg.CertFile,
		"KEY_FILE":      cfg.KeyFile,
		"DATABASE_NAME": cfg.DatabaseName,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.Environments) == 0 {
		return fmt.Errorf("ENVIRONMENTS must list at least one environment")
	}
	for _, e := range cfg.Environments {
		if e == "" {
			return fmt.Errorf("ENVIRONMENTS must not contain empty names")
		}
	}

	return nil
}

// ListenAddr returns the host:port pair the server binds to.
func (c *Config) ListenAddr() string {
	return c.ListenHost + ":" + c.Port
}
