package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benedict2310/deployseo/internal/envmode"
)

// ResolvePath resolves the config path from explicit input, env var, or the
// project root. Only explicit and env paths are required to exist.
func ResolvePath(explicit, root string, env envmode.Env) (path string, required bool) {
	if path := strings.TrimSpace(explicit); path != "" {
		return path, true
	}
	if path := strings.TrimSpace(env.Get(EnvConfigPath)); path != "" {
		return path, true
	}
	if strings.TrimSpace(root) == "" {
		root = DefaultRoot
	}
	return filepath.Join(root, DefaultFileName), false
}

// Load builds the effective config: defaults, then the config file, then
// DEPLOYSEO_* overrides from env. It returns the config file path that was
// read, or "" when none was found.
func Load(explicitPath, root string, env envmode.Env) (Config, string, error) {
	cfg := DefaultConfig()
	if v := strings.TrimSpace(root); v != "" {
		cfg.Root = v
	} else if v := strings.TrimSpace(env.Get(EnvRoot)); v != "" {
		cfg.Root = v
	}

	path, required := ResolvePath(explicitPath, cfg.Root, env)
	used := ""
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, path, fmt.Errorf("parse config file %s: %w", path, err)
		}
		used = path
	case errors.Is(err, os.ErrNotExist) && !required:
	case errors.Is(err, os.ErrNotExist):
		return cfg, path, fmt.Errorf("config file not found at %s", path)
	default:
		return cfg, path, fmt.Errorf("read config file %s: %w", path, err)
	}

	applyEnv(&cfg, env)
	if v := strings.TrimSpace(root); v != "" {
		cfg.Root = v
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		if used != "" {
			return cfg, used, fmt.Errorf("validate config file %s: %w", used, err)
		}
		return cfg, used, fmt.Errorf("validate config: %w", err)
	}
	return cfg, used, nil
}

func applyEnv(cfg *Config, env envmode.Env) {
	if v := strings.TrimSpace(env.Get(EnvRoot)); v != "" {
		cfg.Root = v
	}
	if v := strings.TrimSpace(env.Get(EnvRobotsPath)); v != "" {
		cfg.RobotsPath = v
	}
	if v := strings.TrimSpace(env.Get(EnvMarkerPath)); v != "" {
		cfg.MarkerPath = v
	}
	if v := strings.TrimSpace(env.Get(EnvSitemapURL)); v != "" {
		cfg.SitemapURL = v
	}
	if v := strings.TrimSpace(env.Get(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}
