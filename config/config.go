// Package config holds the settings of the pageparse command and builds its
// logger.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the XDG configuration directory.
	AppName = "pageparse"
	// DefaultConfigFile is looked up in the working directory.
	DefaultConfigFile = ".pageparse.yaml"
)

// Output formats of a parsed document.
const (
	FormatText     = "text"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

type (
	ParserConfig struct {
		StripStyleWhitespace bool `yaml:"strip_style_whitespace"`
	}

	OutputConfig struct {
		Format string `yaml:"format"`
	}

	LoaderConfig struct {
		// Concurrency limits parallel reads and parses, 0 means no limit.
		Concurrency int `yaml:"concurrency"`
	}

	Config struct {
		Logging LoggingConfig `yaml:"logging"`
		Parser  ParserConfig  `yaml:"parser"`
		Output  OutputConfig  `yaml:"output"`
		Loader  LoaderConfig  `yaml:"loader"`
	}
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{ConsoleLogger: LoggerConfig{Level: "normal"}},
		Output:  OutputConfig{Format: FormatText},
		Loader:  LoaderConfig{Concurrency: 4},
	}
}

// Load reads the file at path on top of the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// only fields we defined are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find returns the configuration file to use: explicit if it is not empty,
// otherwise DefaultConfigFile in the working directory, otherwise config.yaml
// in the XDG configuration directory. It returns an empty string when there
// is no file.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	p := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// XDGConfigDir returns the configuration directory of the application.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate returns the first invalid setting as one of the sentinel errors.
func (c *Config) Validate() error {
	switch c.Logging.ConsoleLogger.Level {
	case "none", "normal", "debug":
	default:
		return ErrInvalidLogLevel
	}
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatMarkdown:
	default:
		return ErrInvalidFormat
	}
	if c.Loader.Concurrency < 0 {
		return ErrInvalidConcurrency
	}
	return nil
}
