// Package config loads the site build configuration from a YAML file, with
// environment variable expansion and optional .env loading.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config describes one site build: where content lives, where output goes,
// and the site-level values handed to the renderer context.
type Config struct {
	Site struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Author      string `yaml:"author"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"site"`

	Content struct {
		Dir        string   `yaml:"dir"`
		Extensions []string `yaml:"extensions"`
	} `yaml:"content"`

	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`

	Cache struct {
		Dir     string `yaml:"dir"`
		Enabled bool   `yaml:"enabled"`
	} `yaml:"cache"`

	Templates []string `yaml:"templates"`
}

// Load reads and validates the configuration at path. A .env file in the
// working directory is loaded first (never overriding the process
// environment), and ${VAR} references in the YAML are expanded.
func Load(path string) (*Config, error) {
	// Missing .env is fine; only the config file itself is required.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file exists yet, and the
// shape written by the init command.
func Default() *Config {
	cfg := &Config{}
	cfg.Site.Title = "My Site"
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Content.Dir == "" {
		c.Content.Dir = "content"
	}
	if len(c.Content.Extensions) == 0 {
		c.Content.Extensions = []string{".md", ".txt"}
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "site"
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = ".pagesmith/cache"
	}
}

// Write marshals c to path. Used by the init command; refuses to overwrite
// unless force is set.
func (c *Config) Write(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
