package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const defaultConfigName = ".smallsh.yml"

type Config struct {
	Prompt      string `yaml:"prompt"`
	HomeDir     string `yaml:"home_dir"`
	HistoryFile string `yaml:"history_file"`
	LogFile     string `yaml:"log_file"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads the YAML config at file, or ~/.smallsh.yml when file is
// empty. A missing config file is not an error; the shell starts with
// defaults.
func Load(file string) (*Config, error) {
	cfg := &Config{}

	if file == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		file = filepath.Join(home, defaultConfigName)
	}

	data, err := os.ReadFile(file)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Prompt == "" {
		c.Prompt = ": "
	}

	if c.HomeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.HomeDir = home
	}

	if c.HistoryFile == "" {
		c.HistoryFile = filepath.Join(c.HomeDir, ".smallsh_history")
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return nil
}
