// Package config provides configuration loading for the presentation converter.
package config

import (
	"fmt"
	"strings"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
	"github.com/GabrielNunesIT/ppt2images/internal/adapters/converters"
	"github.com/GabrielNunesIT/ppt2images/internal/domain"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "PPT2IMAGES_"

// Config holds the application configuration.
type Config struct {
	Converter ConverterConfig `koanf:"converter"`
}

// ConverterConfig selects the external tool that produces the intermediate PDF.
type ConverterConfig struct {
	Tool   string `koanf:"tool"`   // unoconv or soffice
	Binary string `koanf:"binary"` // Defaults to Tool, resolved through PATH
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Converter: ConverterConfig{
			Tool: converters.ToolUnoconv,
		},
	}
}

// Load returns the application configuration using go-libs config-loader.
func Load() (*Config, error) {
	loader := configloader.NewConfigLoader(
		configloader.WithDefaults(Defaults()),
		configloader.WithEnv[Config](EnvPrefix),
	)

	cfg, err := loader.Load()
	if err != nil {
		return nil, domain.ConfigError("failed to load configuration", err)
	}

	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Normalize canonicalizes the tool name and trims the binary path.
func (c *Config) Normalize() {
	c.Converter.Tool = converters.NormalizeTool(c.Converter.Tool)
	c.Converter.Binary = strings.TrimSpace(c.Converter.Binary)
}

// Validate checks that the configuration names a supported converter.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Converter.Tool) == "" {
		return domain.ConfigError("converter tool must not be empty", nil)
	}

	if !converters.IsSupported(c.Converter.Tool) {
		return domain.ConfigError(fmt.Sprintf("unsupported converter tool: %s", c.Converter.Tool), nil)
	}

	return nil
}

// ConverterBinary returns the binary to execute for the configured tool.
func (c *Config) ConverterBinary() string {
	if c.Converter.Binary != "" {
		return c.Converter.Binary
	}

	return converters.NormalizeTool(c.Converter.Tool)
}
