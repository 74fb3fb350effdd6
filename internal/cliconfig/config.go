package cliconfig

import (
	"fmt"
	"strings"
)

// Config is the complete configuration for the mockdata CLI.
type Config struct {
	// Seed makes generation reproducible when HasSeed is true.
	Seed    uint64 `yaml:"seed" json:"seed"`
	HasSeed bool   `yaml:"-" json:"hasSeed"`

	// MaxDepth bounds template recursion.
	MaxDepth int `yaml:"maxDepth" json:"maxDepth"`

	// Output settings
	Format string `yaml:"format" json:"format"`
	Indent int    `yaml:"indent" json:"indent"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"sources,omitempty"`

	// SetFields records the keys present in a loaded file, so that explicit
	// zero values (indent: 0, seed: 0) still override.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Default values.
const (
	DefaultMaxDepth  = 256
	DefaultFormat    = "json"
	DefaultIndent    = 2
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		MaxDepth:  DefaultMaxDepth,
		Format:    DefaultFormat,
		Indent:    DefaultIndent,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}
	for _, key := range []string{"maxDepth", "format", "indent", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("maxDepth %d must be positive", c.MaxDepth)
	}
	switch strings.ToLower(c.Format) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("format %q is not json or yaml", c.Format)
	}
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("indent %d is out of range (0-8)", c.Indent)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logFormat %q is not text or json", c.LogFormat)
	}
	return nil
}

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied, unless SetFields says the
// key was given explicitly.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.HasSeed || isSet(source, "seed", source.Seed != 0) {
		target.Seed = source.Seed
		target.HasSeed = true
		target.Sources["seed"] = sourceType
	}
	if isSet(source, "maxDepth", source.MaxDepth != 0) {
		target.MaxDepth = source.MaxDepth
		target.Sources["maxDepth"] = sourceType
	}
	if source.Format != "" {
		target.Format = source.Format
		target.Sources["format"] = sourceType
	}
	if isSet(source, "indent", source.Indent != 0) {
		target.Indent = source.Indent
		target.Sources["indent"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}

// isSet reports whether a field identified by its YAML key was explicitly
// set in the source config. Without SetFields (programmatic configs) only
// non-zero values count.
func isSet(cfg *Config, yamlKey string, nonZero bool) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	return nonZero
}
