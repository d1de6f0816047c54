// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across the working
//              directory and the user configuration directory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation of file discovery
// - 2026-10-11 v0.1.1: Optional discovery falls back to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/extkit/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Values used when a key is missing
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for extkit.toml, extkit.yaml or extkit.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "extkit"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"extkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "EXTKIT",
		Required:   false,
	}
}

// Discover finds the first existing configuration file and loads it. Without
// a file it returns an empty configuration unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"extkit"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if err != nil {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return New(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}

// LoadFromEnv builds a configuration from environment variables only.
// EXTKIT_STORE_PATH with prefix EXTKIT becomes store.path.
func LoadFromEnv(envPrefix string) *Config {
	data := make(map[string]interface{})
	prefix := strings.ToUpper(envPrefix) + "_"

	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if envPrefix != "" {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}

		setPath(data, strings.ToLower(strings.ReplaceAll(key, "_", ".")), parseEnvValue(value))
	}

	return &Config{
		data:      data,
		format:    FormatTOML,
		envPrefix: envPrefix,
		watchers:  make([]ChangeHandler, 0),
	}
}

// parseEnvValue converts environment values to bool, int or float when possible
func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}

	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}

	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}

	return value
}
