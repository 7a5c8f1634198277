// Package config resolves agent settings from the environment, an optional
// .env file and an optional HCL or TOML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variable names read by the agent library
const (
	// EnvStrategy names the registered strategy to run
	EnvStrategy = "POKERBOT_STRATEGY"

	// EnvSeed provides a random seed for deterministic strategies
	EnvSeed = "POKERBOT_SEED"

	// EnvLogLevel is one of debug, info, warn, error
	EnvLogLevel = "POKERBOT_LOG_LEVEL"

	// EnvLogJSON switches log output from console to JSON
	EnvLogJSON = "POKERBOT_LOG_JSON"

	// EnvLogFile redirects logs from stderr to a file
	EnvLogFile = "POKERBOT_LOG_FILE"

	// EnvConfig points at an .hcl or .toml config file
	EnvConfig = "POKERBOT_CONFIG"

	// EnvDecisionBudget is the share of the game clock one decision may use
	EnvDecisionBudget = "POKERBOT_DECISION_BUDGET"
)

// DotEnvFile is loaded from the working directory by FromEnv when present.
const DotEnvFile = ".env"

// ErrUnsupportedFormat is returned for config files that are neither HCL nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// AgentConfig holds the settings used to build an agent
type AgentConfig struct {
	Strategy       string  `hcl:"strategy,optional" toml:"strategy"`
	Seed           int64   `hcl:"seed,optional" toml:"seed"`
	DecisionBudget float64 `hcl:"decision_budget,optional" toml:"decision_budget"`
	LogLevel       string  `hcl:"log_level,optional" toml:"log_level"`
	LogJSON        bool    `hcl:"log_json,optional" toml:"log_json"`
	LogFile        string  `hcl:"log_file,optional" toml:"log_file"`
}

// Defaults returns the configuration used when nothing is set
func Defaults() *AgentConfig {
	return &AgentConfig{
		Strategy:       "skeleton",
		DecisionBudget: 0.05,
		LogLevel:       "info",
	}
}

// LoadFile loads an agent config file. The format is chosen by extension.
// A missing file yields the defaults.
func LoadFile(filename string) (*AgentConfig, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}

	var cfg AgentConfig
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &cfg)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	case ".toml":
		md, err := toml.DecodeFile(filename, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys in %s: %v", filename, undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv resolves the configuration. Values come from, in increasing
// precedence: defaults, the file named by POKERBOT_CONFIG, and the
// environment. A .env file in the working directory is loaded first without
// overriding variables that are already set.
func FromEnv() (*AgentConfig, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	cfg := Defaults()
	if path := os.Getenv(EnvConfig); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AgentConfig) applyEnv() error {
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogJSON); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvLogJSON, err)
		}
		c.LogJSON = b
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvDecisionBudget); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvDecisionBudget, err)
		}
		c.DecisionBudget = f
	}
	return nil
}

func (c *AgentConfig) applyDefaults() {
	defaults := Defaults()
	if c.Strategy == "" {
		c.Strategy = defaults.Strategy
	}
	if c.DecisionBudget == 0 {
		c.DecisionBudget = defaults.DecisionBudget
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Validate validates the agent configuration
func (c *AgentConfig) Validate() error {
	if c.Strategy == "" {
		return fmt.Errorf("strategy is required")
	}

	if c.DecisionBudget <= 0 || c.DecisionBudget > 1 {
		return fmt.Errorf("decision budget must be in (0, 1], got %v", c.DecisionBudget)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
