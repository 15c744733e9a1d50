// Package config loads emergencycard settings from an optional TOML file and
// EMERGENCYCARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"emergencycard/internal/logging"
	"emergencycard/internal/record"

	"github.com/spf13/viper"
)

// DefaultOptionsURL is the endpoint serving the emergency kinds.
const DefaultOptionsURL = "https://wisemed-interview.s3.us-east-2.amazonaws.com/react-native/emergency-kinds.json"

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "EMERGENCYCARD"

// Config is the fully resolved application configuration.
type Config struct {
	OptionsURL string          `mapstructure:"options_url"`
	Log        LogConfig       `mapstructure:"log"`
	Telemetry  TelemetryConfig `mapstructure:"telemetry"`
	Card       CardConfig      `mapstructure:"card"`
}

// LogConfig controls where and how much the app logs.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"` // empty discards logs
}

// TelemetryConfig enables OTLP trace export when OTLPEndpoint is set.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

// CardConfig holds the static card content.
type CardConfig struct {
	Doctor  record.Doctor  `mapstructure:"doctor"`
	Patient record.Patient `mapstructure:"patient"`
}

// Load reads configuration. When path is empty, emergencycard.toml is looked up
// in the user config directory and the working directory; a missing file is not
// an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.BindEnv("telemetry.otlp_endpoint", EnvPrefix+"_TELEMETRY_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind OTEL_EXPORTER_OTLP_ENDPOINT: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("emergencycard")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "emergencycard"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("options_url", DefaultOptionsURL)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.service_name", "emergencycard")

	d := record.DefaultDoctor()
	v.SetDefault("card.doctor.name", d.Name)
	v.SetDefault("card.doctor.specialty", d.Specialty)

	p := record.DefaultPatient()
	v.SetDefault("card.patient.name", p.Name)
	v.SetDefault("card.patient.age", p.Age)
	v.SetDefault("card.patient.medical_record", p.MedicalRecord)
	v.SetDefault("card.patient.diagnosis", p.Diagnosis)
	v.SetDefault("card.patient.intervention", p.Intervention)
	v.SetDefault("card.patient.pre_anesthetic_evaluation", p.PreAnestheticEvaluation)
	v.SetDefault("card.patient.request_time_days", p.RequestTimeDays)
	v.SetDefault("card.patient.suspensions", p.Suspensions)
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.OptionsURL)
	if err != nil {
		return fmt.Errorf("options_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("options_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("options_url: missing host")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format: must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// Logging converts the log section into a logging.Config.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.Log.Format
	return cfg
}
