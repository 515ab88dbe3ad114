package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/drbill/internal/layout"
	"github.com/gyeh/drbill/internal/model"
	"github.com/gyeh/drbill/internal/printdoc"
)

// PageSizes lists the page size names the print backend accepts.
var PageSizes = []string{"A3", "A4", "A5", "Letter", "Legal"}

// Config holds all runtime configuration for a drbill run.
type Config struct {
	FilePath   string
	ConfigPath string
	LogFormat  string // "text" or "json"
	LogLevel   string
	Doctors    []string // raw --doctor flags; the controller dedupes and caps them

	Server Server
	Layout Layout
}

// Server holds the preview surface settings, read from DRBILL_* variables.
type Server struct {
	Addr        string `envconfig:"ADDR" default:"127.0.0.1:8080"`
	MaxUploadMB int64  `envconfig:"MAX_UPLOAD_MB" default:"32"`
}

// Layout is the on-disk `layout` section.
type Layout struct {
	PageSize       string   `yaml:"page_size"`
	MarginMM       float64  `yaml:"margin_mm"`
	BlockSpacingMM float64  `yaml:"block_spacing_mm"`
	RowBudget      int      `yaml:"row_budget"`
	Departments    []string `yaml:"departments"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Layout Layout `yaml:"layout"`
}

// Default returns a Config with every layout value at its default.
func Default() Config {
	var c Config
	_ = c.validateLayout()
	c.Server = Server{Addr: "127.0.0.1:8080", MaxUploadMB: 32}
	c.LogFormat = "text"
	return c
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Layout = yc.Layout
	return c.validateLayout()
}

// validateLayout fills empty layout values with defaults and rejects
// values the renderers cannot honour.
func (c *Config) validateLayout() error {
	l := &c.Layout
	if l.PageSize == "" {
		l.PageSize = printdoc.DefaultOptions().PageSize
	}
	if !slices.Contains(PageSizes, l.PageSize) {
		return fmt.Errorf("unknown page size %q in config", l.PageSize)
	}
	if l.MarginMM == 0 {
		l.MarginMM = printdoc.DefaultOptions().Margin
	}
	if l.MarginMM < 0 || l.MarginMM > 50 {
		return fmt.Errorf("margin_mm %.1f out of range (0, 50]", l.MarginMM)
	}
	if l.BlockSpacingMM == 0 {
		l.BlockSpacingMM = printdoc.DefaultOptions().BlockSpacing
	}
	if l.BlockSpacingMM < 0 || l.BlockSpacingMM > 50 {
		return fmt.Errorf("block_spacing_mm %.1f out of range (0, 50]", l.BlockSpacingMM)
	}
	if l.RowBudget == 0 {
		l.RowBudget = layout.DefaultOptions().RowBudget
	}
	if l.RowBudget < 0 {
		return fmt.Errorf("row_budget %d must be positive", l.RowBudget)
	}
	if len(l.Departments) == 0 {
		l.Departments = slices.Clone(model.DefaultDepartments)
	}
	seen := make(map[string]bool, len(l.Departments))
	for i, name := range l.Departments {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("empty department name at position %d", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate department %q in config", name)
		}
		seen[name] = true
		l.Departments[i] = name
	}

	// A shared page never breaks, so both block bodies must fit half a page.
	rows, depts, err := printdoc.SharedCapacity(c.PrintOptions())
	if err != nil {
		return err
	}
	if l.RowBudget > rows {
		return fmt.Errorf("row_budget %d exceeds the %d rows that fit half of a %s page with %.1f mm margins and %.1f mm spacing",
			l.RowBudget, rows, l.PageSize, l.MarginMM, l.BlockSpacingMM)
	}
	if len(l.Departments) > depts {
		return fmt.Errorf("%d departments exceed the %d summary lines that fit half of a %s page",
			len(l.Departments), depts, l.PageSize)
	}
	return nil
}

// LoadFromEnv reads server settings from DRBILL_* environment variables.
func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process("drbill", &c.Server); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("DRBILL_MAX_UPLOAD_MB must be positive, got %d", c.Server.MaxUploadMB)
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// LayoutOptions returns the block decisions configured for this run.
func (c *Config) LayoutOptions() layout.Options {
	return layout.Options{RowBudget: c.Layout.RowBudget, Departments: c.Layout.Departments}
}

// PrintOptions returns the page geometry configured for this run.
func (c *Config) PrintOptions() printdoc.Options {
	opts := printdoc.DefaultOptions()
	opts.PageSize = c.Layout.PageSize
	opts.Margin = c.Layout.MarginMM
	opts.BlockSpacing = c.Layout.BlockSpacingMM
	return opts
}

// MaxUploadBytes is the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}
