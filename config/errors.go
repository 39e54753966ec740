package config

import "errors"

var (
	// ErrConfigNotFound is returned when an explicitly named configuration
	// file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidLogLevel is returned for a console level other than none,
	// normal or debug.
	ErrInvalidLogLevel = errors.New("invalid console log level: must be none, normal or debug")

	// ErrInvalidFormat is returned for an output format other than text,
	// yaml or markdown.
	ErrInvalidFormat = errors.New("invalid output format: must be text, yaml or markdown")

	// ErrInvalidConcurrency is returned for a negative loader concurrency.
	ErrInvalidConcurrency = errors.New("invalid loader concurrency: must be non-negative")
)
