package config

import (
	"os"
	"path/filepath"
	"testing"

	"emergencycard/internal/record"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emergencycard.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOptionsURL, cfg.OptionsURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "emergencycard", cfg.Telemetry.ServiceName)
	assert.Equal(t, record.DefaultDoctor(), cfg.Card.Doctor)
	assert.Equal(t, record.DefaultPatient(), cfg.Card.Patient)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
options_url = "http://localhost:8080/kinds.json"

[log]
level = "debug"
format = "json"

[card.patient]
name = "Ana"
age = 41
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/kinds.json", cfg.OptionsURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "Ana", cfg.Card.Patient.Name)
	assert.Equal(t, 41, cfg.Card.Patient.Age)
	assert.Equal(t, record.DefaultPatient().Diagnosis, cfg.Card.Patient.Diagnosis)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `options_url = "http://localhost:8080/kinds.json"`)
	t.Setenv("EMERGENCYCARD_OPTIONS_URL", "https://example.com/kinds.json")
	t.Setenv("EMERGENCYCARD_LOG_LEVEL", "warn")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/kinds.json", cfg.OptionsURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, zerolog.WarnLevel, cfg.Logging().Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			OptionsURL: DefaultOptionsURL,
			Log:        LogConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad scheme", func(c *Config) { c.OptionsURL = "ftp://host/x" }, "scheme"},
		{"no host", func(c *Config) { c.OptionsURL = "http:///x" }, "missing host"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
