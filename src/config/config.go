// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfigFile = "PCCS_TOOLS_CONFIG_FILE"
	EnvLogFormat  = "PCCS_TOOLS_LOG_FORMAT"
	EnvOutputDir  = "PCCS_TOOLS_OUTPUT_DIR"
	EnvABIFile    = "PCCS_TOOLS_ABI_FILE"
)

// Log formats accepted in Config.Log.Format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DotEnvFile is the optional environment file read from the working directory.
const DotEnvFile = ".env"

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// configFormat represents supported configuration file formats.
type configFormat int

const (
	configFormatJSON configFormat = iota
	configFormatYAML
)

// Config holds the resolved settings of one command invocation.
type Config struct {
	Log struct {
		// Format selects the diagnostic logger: "text" or "json".
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`

	Identity struct {
		// ABIFile replaces the embedded EnclaveIdentityDao ABI when set.
		ABIFile string `json:"abiFile,omitempty" yaml:"abiFile,omitempty"`
		// OutputDir is where --save writes identity snapshots.
		OutputDir string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	} `json:"identity" yaml:"identity"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	c := &Config{}
	c.Log.Format = LogFormatText
	c.Identity.OutputDir = "."
	return c
}

// detectConfigFormat determines the file format from its extension, case-insensitively.
// Anything that is not .yaml or .yml is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load resolves configuration from defaults, an optional file and the environment.
//
// Parameters:
//   - configPath: Path to a .json, .yaml or .yml file; empty falls back to
//     the PCCS_TOOLS_CONFIG_FILE environment variable, then to defaults only
//
// Returns:
//   - *Config: Resolved configuration
//   - error: Error if the .env file, the config file or a resolved value is invalid
//
// Configuration Priority:
//  1. Default values are set
//  2. .env is loaded into the process environment (missing file is ignored)
//  3. Config file values override defaults
//  4. Environment variables override config file values
func Load(configPath string) (*Config, error) {
	config := Default()

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		config.Log.Format = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		config.Identity.OutputDir = v
	}
	if v := os.Getenv(EnvABIFile); v != "" {
		config.Identity.ABIFile = v
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate normalizes empty values to their defaults and rejects unknown log formats.
func (c *Config) Validate() error {
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "":
		c.Log.Format = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: unsupported log format %q (want %q or %q)",
			ErrInvalidConfig, c.Log.Format, LogFormatText, LogFormatJSON)
	}

	if c.Identity.OutputDir == "" {
		c.Identity.OutputDir = "."
	}
	return nil
}
