// Package config defines program configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Process ProcessConfig `yaml:"process"`
}

// ProcessConfig controls how stylesheet sources are read and written.
type ProcessConfig struct {
	// transcode sources with a leading @charset rule to UTF-8
	DecodeCharset bool `yaml:"decode_charset"`
	// after processing, warn when the output is not standard CSS
	StrictCheck bool `yaml:"strict_check"`
	// inputs with these extensions are treated as HTML and have their
	// <style> blocks extracted first
	HTMLExtensions []string `yaml:"html_extensions" validate:"dive,startswith=."`
}

// Default returns configuration used when no file is given; file values
// are overlaid on top of it.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "append"},
		},
		Process: ProcessConfig{
			DecodeCharset:  true,
			HTMLExtensions: []string{".html", ".htm", ".xhtml"},
		},
	}
}

// LoadConfiguration reads the configuration file at path, superimposes its
// values on top of defaults and validates the result. An empty path gives
// plain defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg := Default()

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// We want to use only fields we defined so we cannot use
		// yaml.Unmarshal directly here
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode configuration data: %w", err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration is invalid: %w", err)
	}
	return cfg, nil
}

// Dump serializes the active configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal configuration: %w", err)
	}
	return data, nil
}
