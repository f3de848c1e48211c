// Package config loads roster's configuration from defaults, the YAML config
// file, a .env file, ROSTER_* environment variables and finally CLI flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rshade/roster/internal/api"
	"github.com/rshade/roster/internal/fetch"
	"github.com/rshade/roster/internal/logging"
)

// Output formats for non-interactive rendering.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
)

// IsValidOutputFormat reports whether format is a known output format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputTable, OutputJSON, OutputNDJSON:
		return true
	default:
		return false
	}
}

// Environment variables understood by applyEnv.
const (
	EnvHome            = "ROSTER_HOME"
	EnvCharactersURL   = "ROSTER_CHARACTERS_URL"
	EnvCharactersLimit = "ROSTER_CHARACTERS_LIMIT"
	EnvPostsURL        = "ROSTER_POSTS_URL"
	EnvHTTPTimeout     = "ROSTER_HTTP_TIMEOUT"
	EnvOutputFormat    = "ROSTER_OUTPUT"
	EnvLogLevel        = "ROSTER_LOG_LEVEL"
	EnvLogFormat       = "ROSTER_LOG_FORMAT"
	EnvLogFile         = "ROSTER_LOG_FILE"
)

// configFileName is the config file looked up inside the config directory.
const configFileName = "config.yaml"

// Config is the full roster configuration.
type Config struct {
	Characters CharactersConfig `yaml:"characters"`
	Posts      PostsConfig      `yaml:"posts"`
	HTTP       HTTPConfig       `yaml:"http"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CharactersConfig configures the character catalog API.
type CharactersConfig struct {
	BaseURL string `yaml:"base_url"`
	Limit   int    `yaml:"limit"`
}

// PostsConfig configures the placeholder posts API.
type PostsConfig struct {
	BaseURL string `yaml:"base_url"`
}

// HTTPConfig configures the HTTP client shared by every screen.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig configures non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Characters: CharactersConfig{
			BaseURL: api.DefaultCharactersBaseURL,
			Limit:   api.DefaultCharacterLimit,
		},
		Posts:   PostsConfig{BaseURL: api.DefaultPostsBaseURL},
		HTTP:    HTTPConfig{Timeout: fetch.DefaultTimeout},
		Output:  OutputConfig{DefaultFormat: OutputTable},
		Logging: LoggingConfig{Level: "info", Format: logging.FormatJSON},
	}
}

// New returns the configuration from the default config file and the
// environment. Load failures fall back to defaults plus environment.
func New() *Config {
	cfg, err := Load("")
	if err != nil {
		cfg = Default()
		cfg.applyEnv()
	}
	return cfg
}

// Load builds a configuration from path, or from the default config file when
// path is empty. A missing default file is not an error; a missing explicit
// file is. Values from a .env file in the working directory and from the
// environment are applied on top of the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := GetConfigDir()
		if err == nil {
			path = filepath.Join(dir, configFileName)
		}
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil || explicit {
			if err := ShallowMergeYAML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files, or ./.env when none are given.
// Variables already present in the environment are never overwritten, and
// missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// applyEnv overrides fields from ROSTER_* environment variables. Unparseable
// numeric values are ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvCharactersURL); v != "" {
		c.Characters.BaseURL = v
	}
	if v := os.Getenv(EnvCharactersLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Characters.Limit = n
		}
	}
	if v := os.Getenv(EnvPostsURL); v != "" {
		c.Posts.BaseURL = v
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTP.Timeout = d
		}
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// Validate checks that the configuration can drive the screens.
func (c *Config) Validate() error {
	var errs []error
	if err := validateBaseURL("characters.base_url", c.Characters.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateBaseURL("posts.base_url", c.Posts.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if c.Characters.Limit <= 0 {
		errs = append(errs, fmt.Errorf("characters.limit must be > 0, got %d", c.Characters.Limit))
	}
	if c.HTTP.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("http.timeout must be > 0, got %s", c.HTTP.Timeout))
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format must be %q, %q or %q, got %q",
			OutputTable, OutputJSON, OutputNDJSON, c.Output.DefaultFormat))
	}
	return errors.Join(errs...)
}

func validateBaseURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", field, raw)
	}
	return nil
}
