package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/benedict2310/deployseo/internal/seo"
)

const (
	EnvConfigPath = "DEPLOYSEO_CONFIG"
	EnvRoot       = "DEPLOYSEO_ROOT"
	EnvRobotsPath = "DEPLOYSEO_ROBOTS_PATH"
	EnvMarkerPath = "DEPLOYSEO_MARKER_PATH"
	EnvSitemapURL = "DEPLOYSEO_SITEMAP_URL"
	EnvLogLevel   = "DEPLOYSEO_LOG_LEVEL"

	DefaultRoot     = "."
	DefaultLogLevel = "warn"
	DefaultFileName = ".deployseo.yaml"
)

// Config controls where the SEO artifacts are written.
type Config struct {
	Root       string `yaml:"root"`
	RobotsPath string `yaml:"robotsPath"`
	MarkerPath string `yaml:"markerPath"`
	SitemapURL string `yaml:"sitemapURL"`
	LogLevel   string `yaml:"logLevel"`
}

func DefaultConfig() Config {
	return Config{
		Root:       DefaultRoot,
		RobotsPath: seo.DefaultRobotsPath,
		MarkerPath: seo.DefaultMarkerPath,
		SitemapURL: seo.DefaultSitemapURL,
		LogLevel:   DefaultLogLevel,
	}
}

func (c *Config) normalize() {
	def := DefaultConfig()
	c.Root = strings.TrimSpace(c.Root)
	if c.Root == "" {
		c.Root = def.Root
	}
	c.RobotsPath = strings.TrimSpace(c.RobotsPath)
	if c.RobotsPath == "" {
		c.RobotsPath = def.RobotsPath
	}
	c.MarkerPath = strings.TrimSpace(c.MarkerPath)
	if c.MarkerPath == "" {
		c.MarkerPath = def.MarkerPath
	}
	c.SitemapURL = strings.TrimSpace(c.SitemapURL)
	if c.SitemapURL == "" {
		c.SitemapURL = def.SitemapURL
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate checks config invariants that must hold before any file is touched.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("root is required")
	}
	if err := validateRelPath("robotsPath", c.RobotsPath); err != nil {
		return err
	}
	if err := validateRelPath("markerPath", c.MarkerPath); err != nil {
		return err
	}
	if c.RobotsPath == c.MarkerPath {
		return fmt.Errorf("robotsPath and markerPath must differ")
	}
	u, err := url.Parse(c.SitemapURL)
	if err != nil {
		return fmt.Errorf("parse sitemapURL %q: %w", c.SitemapURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("sitemapURL %q must be an absolute http(s) URL", c.SitemapURL)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func validateRelPath(field, p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("%s is required", field)
	}
	if !filepath.IsLocal(filepath.FromSlash(p)) {
		return fmt.Errorf("%s %q must be a relative path inside root", field, p)
	}
	return nil
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", level)
	}
}
