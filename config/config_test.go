package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_WithFile(t *testing.T) {
	path := writeConfig(t, `logging:
  console:
    level: debug
parser:
  strip_style_whitespace: true
output:
  format: markdown
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.ConsoleLogger.Level)
	assert.True(t, cfg.Parser.StripStyleWhitespace)
	assert.Equal(t, FormatMarkdown, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Loader.Concurrency, "unset values keep their defaults")
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = Load(writeConfig(t, "output: [unclosed"))
	assert.ErrorContains(t, err, "failed to decode")

	_, err = Load(writeConfig(t, "unknown_field: 1\n"))
	assert.ErrorContains(t, err, "failed to decode")

	_, err = Load(writeConfig(t, "output:\n  format: pdf\n"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"no logging", func(c *Config) { c.Logging.ConsoleLogger.Level = "none" }, nil},
		{"bad level", func(c *Config) { c.Logging.ConsoleLogger.Level = "loud" }, ErrInvalidLogLevel},
		{"yaml", func(c *Config) { c.Output.Format = FormatYAML }, nil},
		{"bad format", func(c *Config) { c.Output.Format = "" }, ErrInvalidFormat},
		{"unlimited", func(c *Config) { c.Loader.Concurrency = 0 }, nil},
		{"negative concurrency", func(c *Config) { c.Loader.Concurrency = -1 }, ErrInvalidConcurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Equal(t, tt.want, cfg.Validate())
		})
	}
}

func TestFind(t *testing.T) {
	assert.Equal(t, "explicit.yaml", Find("explicit.yaml"))

	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(""), 0o644))
	assert.Equal(t, filepath.Join(dir, DefaultConfigFile), Find(""))
}

func TestLoggerLevels(t *testing.T) {
	var stdout, stderr bytes.Buffer

	log := (&LoggingConfig{ConsoleLogger: LoggerConfig{Level: "normal"}}).build(&stdout, &stderr)
	log.Debug("hidden")
	log.Info("shown", zap.String("k", "v"))
	log.Error("failed")
	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "INFO")
	assert.Contains(t, stdout.String(), "shown")
	assert.NotContains(t, stdout.String(), "failed")
	assert.Contains(t, stderr.String(), "ERROR")
	assert.Contains(t, stderr.String(), "failed")

	stdout.Reset()
	log = (&LoggingConfig{ConsoleLogger: LoggerConfig{Level: "debug"}}).build(&stdout, &stderr)
	log.Debug("visible")
	assert.Contains(t, stdout.String(), "visible")

	stdout.Reset()
	stderr.Reset()
	log = (&LoggingConfig{ConsoleLogger: LoggerConfig{Level: "none"}}).build(&stdout, &stderr)
	log.Error("dropped")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}
