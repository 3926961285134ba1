// Package config provides configuration management for pathintel.
// It handles loading and parsing of the YAML configuration file and
// mapping its values onto completion options.
package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/atinylittleshell/pathintel/internal/completion"
	"github.com/atinylittleshell/pathintel/internal/lrucache"
)

// Config holds all settings read from the configuration file.
type Config struct {
	// CacheCapacity is the number of directory listings kept per session.
	CacheCapacity int `yaml:"cacheCapacity"`

	// LogLevel controls logging verbosity
	LogLevel string `yaml:"logLevel"`

	// Icons attaches file type icon classes to suggestions.
	Icons bool `yaml:"icons"`

	ShowHidden bool `yaml:"showHidden"`

	// RootDir is the base directory for inputs starting with "/".
	// Environment variables and a leading "~/" are expanded when loading.
	RootDir string `yaml:"rootDir"`

	NormalScore int `yaml:"normalScore"`
	PathScore   int `yaml:"pathScore"`

	WarmConcurrency int `yaml:"warmConcurrency"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		CacheCapacity:   lrucache.DefaultCapacity,
		LogLevel:        "info",
		ShowHidden:      true,
		NormalScore:     completion.DefaultNormalScore,
		PathScore:       completion.DefaultPathScore,
		WarmConcurrency: completion.DefaultWarmConcurrency,
	}
}

// Level returns the configured log level, or info when it cannot be parsed.
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// CompletionOptions maps the configuration onto completer options.
func (c *Config) CompletionOptions() completion.Options {
	return completion.Options{
		CacheCapacity:   c.CacheCapacity,
		NormalScore:     c.NormalScore,
		PathScore:       c.PathScore,
		RootDir:         c.RootDir,
		ShowHidden:      c.ShowHidden,
		Icons:           c.Icons,
		WarmConcurrency: c.WarmConcurrency,
	}
}
