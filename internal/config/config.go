package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Route declares one navigation path and the view it renders.
type Route struct {
	Path  string `toml:"path"`
	View  string `toml:"view"`
	Title string `toml:"title"`
}

// Page declares a view inline in the config file.
type Page struct {
	ID      string `toml:"id"`
	Title   string `toml:"title"`
	Content string `toml:"content"`
}

// Config captures everything signpost reads from its config file.
type Config struct {
	DefaultRoute string
	StartPath    string
	NotFoundView string
	Theme        string
	LogFile      string
	LogLevel     string
	PagesDir     string
	Routes       []Route
	Pages        []Page
}

const (
	defaultConfigPath = "~/.config/signpost/config.toml"
	defaultLogFile    = "~/.local/share/signpost/signpost.log"
)

// Load locates and parses the config file. A missing file is not an
// error: the zero site (no routes, no pages) comes back with defaults
// filled in, and the caller falls back to the built-in demo site.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{LogFile: mustExpand(defaultLogFile)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DefaultRoute string  `toml:"default_route"`
		StartPath    string  `toml:"start_path"`
		NotFoundView string  `toml:"not_found_view"`
		Theme        string  `toml:"theme"`
		LogFile      string  `toml:"log_file"`
		LogLevel     string  `toml:"log_level"`
		PagesDir     string  `toml:"pages_dir"`
		Routes       []Route `toml:"routes"`
		Pages        []Page  `toml:"pages"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DefaultRoute = strings.TrimSpace(raw.DefaultRoute)
	cfg.StartPath = strings.TrimSpace(raw.StartPath)
	cfg.NotFoundView = strings.TrimSpace(raw.NotFoundView)
	cfg.Theme = strings.TrimSpace(raw.Theme)
	cfg.LogLevel = strings.TrimSpace(raw.LogLevel)

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if pagesDir := strings.TrimSpace(raw.PagesDir); pagesDir != "" {
		cfg.PagesDir = mustExpand(pagesDir)
	}

	cfg.Routes = raw.Routes
	cfg.Pages = raw.Pages

	if cfg.StartPath == "" {
		cfg.StartPath = cfg.DefaultRoute
	}

	return cfg, nil
}

// HasSite reports whether the config declares a site of its own. When it
// does not, the built-in demo site is used instead.
func (c Config) HasSite() bool {
	return len(c.Routes) > 0
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
