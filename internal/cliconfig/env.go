package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvSeed      = "MOCKDATA_SEED"
	EnvMaxDepth  = "MOCKDATA_MAX_DEPTH"
	EnvFormat    = "MOCKDATA_FORMAT"
	EnvIndent    = "MOCKDATA_INDENT"
	EnvLogLevel  = "MOCKDATA_LOG_LEVEL"
	EnvLogFormat = "MOCKDATA_LOG_FORMAT"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment; unparseable
// numbers are ignored.
func LoadEnvConfig(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	// MOCKDATA_SEED
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
			cfg.HasSeed = true
			cfg.Sources["seed"] = SourceEnv
		}
	}

	// MOCKDATA_MAX_DEPTH
	if v := os.Getenv(EnvMaxDepth); v != "" {
		if depth, err := strconv.Atoi(v); err == nil {
			cfg.MaxDepth = depth
			cfg.Sources["maxDepth"] = SourceEnv
		}
	}

	// MOCKDATA_FORMAT
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
		cfg.Sources["format"] = SourceEnv
	}

	// MOCKDATA_INDENT
	if v := os.Getenv(EnvIndent); v != "" {
		if indent, err := strconv.Atoi(v); err == nil {
			cfg.Indent = indent
			cfg.Sources["indent"] = SourceEnv
		}
	}

	// MOCKDATA_LOG_LEVEL
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}

	// MOCKDATA_LOG_FORMAT
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}
