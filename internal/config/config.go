// Package config loads the command configuration from a YAML file, a .env
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/rentsheet/internal/logging"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Stdout is the output path that writes to standard output.
const Stdout = "-"

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	Color bool   `yaml:"color"`
}

// Config holds the command configuration.
type Config struct {
	Input  string    `yaml:"input"`
	Output string    `yaml:"output"`
	Sheet  string    `yaml:"sheet"`
	Format string    `yaml:"format"`
	Pretty bool      `yaml:"pretty"`
	Log    LogConfig `yaml:"log"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Format: FormatJSON,
		Pretty: true,
		Log: LogConfig{
			Level: "info",
			Color: true,
		},
	}
}

// Load builds the configuration. Values are taken, by increasing priority,
// from the defaults, the YAML file at path (if any) and the environment.
// envFile is loaded into the environment first; when empty, a .env file in
// the working directory is loaded if present. An unreadable .env is an error.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	c.Input = getEnv("RENTSHEET_INPUT", c.Input)
	c.Output = getEnv("RENTSHEET_OUTPUT", c.Output)
	c.Sheet = getEnv("RENTSHEET_SHEET", c.Sheet)
	c.Format = getEnv("RENTSHEET_FORMAT", c.Format)
	c.Log.Level = getEnv("RENTSHEET_LOG_LEVEL", c.Log.Level)

	var err error
	if c.Pretty, err = getEnvBool("RENTSHEET_PRETTY", c.Pretty); err != nil {
		return err
	}
	if c.Log.JSON, err = getEnvBool("RENTSHEET_LOG_JSON", c.Log.JSON); err != nil {
		return err
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Log.Color = false
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input file is required (argument or RENTSHEET_INPUT)")
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatJSON && c.Format != FormatCSV {
		return fmt.Errorf("invalid format: %s (must be json or csv)", c.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// OutputPath returns the configured output path, or the input path with
// the extension of the output format.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	base := strings.TrimSuffix(c.Input, filepath.Ext(c.Input))
	return base + "." + c.Format
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s value: %v", key, err)
	}
	return b, nil
}
