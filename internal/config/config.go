package config

import (
	"ctchen222/tictactoe/internal/validator"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE"`
	Computer  Computer  `yaml:"computer"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Computer struct {
	MoveDelay time.Duration `yaml:"move-delay" env:"COMPUTER_MOVE_DELAY" env-default:"500ms" validate:"gte=0s"`
}

type Telemetry struct {
	// OTLPEndpoint is the collector address; empty disables export.
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

// Load reads the YAML file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.Struct(config); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
