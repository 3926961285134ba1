package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"

	"github.com/atinylittleshell/pathintel/internal/core"
)

// Loader handles loading and parsing of configuration files.
type Loader struct {
	logger  *zap.Logger
	environ expand.Environ
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger:  logger,
		environ: expand.ListEnviron(os.Environ()...),
	}
}

// LoadResult contains the result of loading a configuration file.
type LoadResult struct {
	Config *Config
	Errors []error
}

// LoadFromFile loads configuration from a YAML file.
// Returns the configuration and any non-fatal errors encountered.
// If the file doesn't exist, returns default configuration with no error.
func (l *Loader) LoadFromFile(path string) (*LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return &LoadResult{Config: DefaultConfig(), Errors: []error{}}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.LoadFromString(string(content))
}

// LoadFromString loads configuration from YAML source.
func (l *Loader) LoadFromString(source string) (*LoadResult, error) {
	result := &LoadResult{
		Config: DefaultConfig(),
		Errors: []error{},
	}

	decoded := DefaultConfig()
	dec := yaml.NewDecoder(strings.NewReader(source))
	dec.KnownFields(true)
	if err := dec.Decode(decoded); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file
			return result, nil
		}
		result.Errors = append(result.Errors, fmt.Errorf("parse error: %w", err))
		// Continue with defaults on parse errors
		return result, nil
	}

	result.Config = decoded
	l.validate(result)
	l.expandRootDir(result)

	return result, nil
}

// LoadDefaultConfigPath loads configuration from the default path (~/.pathintel/config.yaml).
func (l *Loader) LoadDefaultConfigPath() (*LoadResult, error) {
	return l.LoadFromFile(core.ConfigFile())
}

// validate replaces invalid values with their defaults and records why.
func (l *Loader) validate(result *LoadResult) {
	cfg := result.Config
	defaults := DefaultConfig()

	if cfg.CacheCapacity <= 0 {
		result.Errors = append(result.Errors, fmt.Errorf("cacheCapacity must be positive, got %d", cfg.CacheCapacity))
		cfg.CacheCapacity = defaults.CacheCapacity
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("invalid logLevel %q", cfg.LogLevel))
		cfg.LogLevel = defaults.LogLevel
	}

	if cfg.WarmConcurrency <= 0 {
		result.Errors = append(result.Errors, fmt.Errorf("warmConcurrency must be positive, got %d", cfg.WarmConcurrency))
		cfg.WarmConcurrency = defaults.WarmConcurrency
	}
}

// expandRootDir expands rootDir as a shell word, so "$HOME/src" and "~/src" work.
func (l *Loader) expandRootDir(result *LoadResult) {
	rootDir := result.Config.RootDir
	if rootDir == "" {
		return
	}

	if rootDir == "~" || strings.HasPrefix(rootDir, "~/") {
		rootDir = "$HOME" + strings.TrimPrefix(rootDir, "~")
	}

	expanded, err := l.expandWord(rootDir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to expand rootDir: %w", err))
		result.Config.RootDir = ""
		return
	}

	l.logger.Debug("expanded rootDir", zap.String("from", result.Config.RootDir), zap.String("to", expanded))
	result.Config.RootDir = expanded
}

func (l *Loader) expandWord(s string) (string, error) {
	word, err := syntax.NewParser().Document(strings.NewReader(s))
	if err != nil {
		return "", err
	}
	return expand.Document(&expand.Config{Env: l.environ}, word)
}
