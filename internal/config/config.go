// Package config provides configuration management for the drills commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultBanner = "--- Go Function Calls ---"
	defaultPrompt = "Enter a number to check: "
)

// Config represents the configuration shared by checknumber and carinfo.
type Config struct {
	// General settings
	Verbose bool `yaml:"verbose,omitempty"`

	// Sign classifier settings
	Sign SignConfig `yaml:"sign,omitempty"`
}

// SignConfig contains the texts written before the number is read.
type SignConfig struct {
	Banner string `yaml:"banner,omitempty"`
	Prompt string `yaml:"prompt,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Sign: SignConfig{
			Banner: defaultBanner,
			Prompt: defaultPrompt,
		},
	}
}

// Load loads configuration from file, falling back to defaults.
// An empty path never touches the filesystem.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			return nil, err
		}
	}

	cfg.validate()

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func (c *Config) validate() {
	if c.Sign.Banner == "" {
		c.Sign.Banner = defaultBanner
	}

	if c.Sign.Prompt == "" {
		c.Sign.Prompt = defaultPrompt
	}
}
