package config

import (
	"sync/atomic"
)

var configValue atomic.Value

func GetConfig() *Config {
	cfg, _ := configValue.Load().(*Config)
	if cfg == nil {
		return NewDefaultConfig()
	}
	return cfg
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment" validate:"oneof=development staging production test"`
	Server      ServerConfig    `mapstructure:"server"`
	Matcher     MatcherConfig   `mapstructure:"matcher"`
	Dashboard   DashboardConfig `mapstructure:"dashboard"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port" validate:"min=1,max=65535"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout int    `mapstructure:"write_timeout" validate:"min=0"`
	IdleTimeout  int    `mapstructure:"idle_timeout" validate:"min=0"`
	Gzip         bool   `mapstructure:"gzip"`
	// MaxBodyBytes caps request bodies of the evaluation endpoints.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"min=1024"`
}

type MatcherConfig struct {
	DisplayHours []int `mapstructure:"display_hours" validate:"min=1,max=24,dive,min=0,max=23"`
}

type DashboardConfig struct {
	Concurrency       int    `mapstructure:"concurrency" validate:"min=1,max=64"`
	StaleGraceMinutes int    `mapstructure:"stale_grace_minutes" validate:"min=0"`
	WindUnit          string `mapstructure:"wind_unit" validate:"oneof=ms knots"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
			Gzip:         true,
			MaxBodyBytes: 1 << 20,
		},
		Matcher: MatcherConfig{
			DisplayHours: []int{10, 12, 14, 16, 18, 20},
		},
		Dashboard: DashboardConfig{
			Concurrency:       4,
			StaleGraceMinutes: 30,
			WindUnit:          "ms",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			Endpoint:    "tempo:4317",
			ServiceName: "wind-activity-app",
		},
	}
}
