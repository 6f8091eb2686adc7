// Package config loads server settings from defaults, an optional YAML file and the
// environment, in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string   `yaml:"addr"`
	AllowOrigins  []string `yaml:"allow_origins"`
	LogLevel      string   `yaml:"log_level"`
	LogFormat     string   `yaml:"log_format"`
	PlacementFile string   `yaml:"placement_file"`
}

func Default() Config {
	return Config{
		Addr:         ":3000",
		AllowOrigins: []string{"http://localhost:5173"},
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads path over the defaults (an empty path skips the file) and applies
// CHESS_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("'%s': %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("'%s': %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("CHESS_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("CHESS_ALLOW_ORIGINS"); v != "" {
		c.AllowOrigins = splitList(v)
	}
	if v := getenv("CHESS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("CHESS_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("CHESS_PLACEMENT"); v != "" {
		c.PlacementFile = v
	}
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr is empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format %q, want text or json", c.LogFormat)
	}
	return nil
}

// Origins joins AllowOrigins the way the CORS middleware expects them.
func (c Config) Origins() string {
	return strings.Join(c.AllowOrigins, ", ")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
