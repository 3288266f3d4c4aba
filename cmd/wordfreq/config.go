package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Config holds the settings of a word count run. Every field may be set from
// the environment (prefix WORDFREQ, e.g. WORDFREQ_MIN_LENGTH) and overridden
// by command line flags.
type Config struct {
	Top       int    `default:"20"`
	MinLength int    `default:"1" split_words:"true"`
	BatchSize int    `default:"256" split_words:"true"`
	Trace     string `default:"error"`
	NoColor   bool   `split_words:"true"`
	Stats     bool
	Dot       string
}

// LoadFromEnv loads a new configuration structure using environment variables
// and an optional .env file.
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Load()

	config := new(Config)
	if err := envconfig.Process("wordfreq", config); err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Top < 0 {
		return errors.Newf("top must not be negative, is %d", c.Top)
	}
	if c.MinLength < 0 {
		return errors.Newf("minimum word length must not be negative, is %d", c.MinLength)
	}
	if c.BatchSize < 0 {
		return errors.Newf("batch size must not be negative, is %d", c.BatchSize)
	}
	switch strings.ToLower(c.Trace) {
	case "debug", "info", "error", "":
		return nil
	}
	return errors.Newf("unknown trace level %q", c.Trace)
}

// setTraceLevel sets the level of the global tracer. An empty name selects
// errors only.
func setTraceLevel(name string) error {
	switch strings.ToLower(name) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "error", "":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		return errors.Newf("unknown trace level %q", name)
	}
	return nil
}
