package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePath string `toml:"scene" yaml:"scene"` // hcl files

	LogFormat  string `toml:"log_format" yaml:"log_format"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
	ListenPort int    `toml:"listen_port" yaml:"listen_port"`

	NotifyURL       string `toml:"notify_url" yaml:"notify_url"`
	NotifyNamespace string `toml:"notify_namespace" yaml:"notify_namespace"`

	Watch     bool     `toml:"watch" yaml:"watch"`
	Overrides []string `toml:"set" yaml:"set"`
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenePath == "" {
		return nil, errors.New("ScenePath is a required configuration field and cannot be empty")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.ListenPort < 0 || cfg.ListenPort > 65535 {
		return nil, fmt.Errorf("invalid listen port %d", cfg.ListenPort)
	}

	return &cfg, nil
}

// LoadConfigFile reads configuration defaults from a TOML file, or a YAML
// file when the extension is .yaml or .yml. Unknown keys are rejected so
// typos do not go unnoticed. The result is not validated; callers merge it
// with flags and pass it to NewConfig.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config file %s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
