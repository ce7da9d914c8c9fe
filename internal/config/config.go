// Package config loads the settings of the enumname command. Settings are
// layered: defaults, then the YAML file, then ENUMNAME_* environment
// variables. Command-line flags are applied last by the command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".enumname.yaml"

type Config struct {
	// Tags is comma-separated build tags in addition to "enumname".
	Tags string `yaml:"tags"`

	// Tests includes test files.
	Tests bool `yaml:"tests"`

	// Output is the name of the generated file in each package.
	Output string `yaml:"output"`

	// Color is one of "auto", "always" and "never".
	Color string `yaml:"color"`

	// LogLevel is a go-logging level name.
	LogLevel string `yaml:"logLevel"`

	// Patterns are used when no package pattern is given on the command
	// line.
	Patterns []string `yaml:"patterns"`
}

func Default() Config {
	return Config{
		Output:   "enumname_gen.go",
		Color:    "auto",
		LogLevel: "WARNING",
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment variables. A missing file is ignored unless mustExist is true.
func Load(path string, mustExist bool) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !mustExist:
	default:
		return cfg, err
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// decode decodes YAML strictly so that misspelled keys are reported.
func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func getenv(lookup func(string) (string, bool), k, fallback string) string {
	if v, ok := lookup(k); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getenvBool(lookup func(string) (string, bool), k string, fallback bool) (bool, error) {
	v, ok := lookup(k)
	if !ok {
		return fallback, nil
	}
	switch strings.TrimSpace(strings.ToLower(v)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	case "":
		return fallback, nil
	}
	return fallback, fmt.Errorf("%s: invalid boolean %q", k, v)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	c.Tags = getenv(lookup, "ENUMNAME_TAGS", c.Tags)
	c.Output = getenv(lookup, "ENUMNAME_OUTPUT", c.Output)
	c.Color = getenv(lookup, "ENUMNAME_COLOR", c.Color)
	c.LogLevel = getenv(lookup, "ENUMNAME_LOG_LEVEL", c.LogLevel)

	tests, err := getenvBool(lookup, "ENUMNAME_TESTS", c.Tests)
	if err != nil {
		return err
	}
	c.Tests = tests
	return nil
}

// Validate checks the values which cannot be checked by their types.
func (c Config) Validate() error {
	var errs error
	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = errors.Join(errs, fmt.Errorf("invalid color %q; need auto, always or never", c.Color))
	}
	if !strings.HasSuffix(c.Output, ".go") || strings.ContainsRune(c.Output, os.PathSeparator) {
		errs = errors.Join(errs, fmt.Errorf("invalid output %q; need a Go file name", c.Output))
	}
	if _, err := c.Level(); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	return errs
}

// Level returns the go-logging level of LogLevel.
func (c Config) Level() (logging.Level, error) {
	return logging.LogLevel(c.LogLevel)
}
