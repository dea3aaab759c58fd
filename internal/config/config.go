/*
Package config loads petitions configuration.

Values are resolved in this order (highest priority first):
 1. CLI flags (explicitly passed)
 2. Environment (PETITIONS_BASE_URL)
 3. Config file values
 4. Built-in defaults
*/
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/petitions/internal/version"
)

// EnvBaseURL overrides the configured feed base URL.
const EnvBaseURL = "PETITIONS_BASE_URL"

// Config is the top-level configuration.
type Config struct {
	BaseURL        string   `yaml:"base_url"`
	Limit          int      `yaml:"limit"`
	SignatureFloor int      `yaml:"signature_floor"`
	Timeout        Duration `yaml:"timeout"`
	UserAgent      string   `yaml:"user_agent"`
	LogDir         string   `yaml:"log_dir"`
	Verbose        bool     `yaml:"verbose"`
	Theme          string   `yaml:"theme"`
}

var themes = []string{"classic", "neon", "mono"}

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		BaseURL:        "https://api.whitehouse.gov/v1",
		Limit:          100,
		SignatureFloor: 10000,
		Timeout:        Duration{30 * time.Second},
		UserAgent:      version.UserAgent(),
		Theme:          "classic",
	}
}

// Load reads and parses a config file. If path is empty it looks for
// petitions.yml or petitions.yaml in the working directory.
// Returns the config and the path that was loaded (empty if none found).
func Load(path string) (Config, string, error) {
	cfg := Default()

	if path == "" {
		path = discover()
		if path == "" {
			return cfg, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, path, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, path, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, path, nil
}

func discover() string {
	for _, name := range []string{"petitions.yml", "petitions.yaml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
}

// CLIOverrides holds flag values. A nil field means the flag was not set.
type CLIOverrides struct {
	BaseURL *string
	LogDir  *string
	Verbose *bool
	Theme   *string
}

// Merge applies explicitly-set CLI flags.
func (c *Config) Merge(o CLIOverrides) {
	if o.BaseURL != nil {
		c.BaseURL = *o.BaseURL
	}
	if o.LogDir != nil {
		c.LogDir = *o.LogDir
	}
	if o.Verbose != nil {
		c.Verbose = *o.Verbose
	}
	if o.Theme != nil {
		c.Theme = *o.Theme
	}
}

// Validate returns an error describing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	u, err := url.Parse(c.BaseURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Sprintf("base_url: invalid URL %q: %v", c.BaseURL, err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Sprintf("base_url: scheme must be http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = append(errs, fmt.Sprintf("base_url: missing host in %q", c.BaseURL))
	}

	if c.Limit <= 0 {
		errs = append(errs, fmt.Sprintf("limit: must be positive, got %d", c.Limit))
	}
	if c.SignatureFloor < 0 {
		errs = append(errs, fmt.Sprintf("signature_floor: must not be negative, got %d", c.SignatureFloor))
	}
	if c.Timeout.Duration <= 0 {
		errs = append(errs, fmt.Sprintf("timeout: must be positive, got %s", c.Timeout))
	}

	if !validTheme(c.Theme) {
		errs = append(errs, fmt.Sprintf("theme: must be one of %s, got %q", strings.Join(themes, ", "), c.Theme))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validTheme(name string) bool {
	for _, t := range themes {
		if strings.EqualFold(name, t) {
			return true
		}
	}
	return false
}
