// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads extkit settings from TOML or YAML files
//              with environment overrides, defaults, discovery and reload on
//              change.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-12 v0.2.0: fsnotify watcher, nested defaults

/*
Package config provides configuration management for the extkit tools.

Key Features:
  • TOML and YAML files with detection by extension
  • Dot-notation keys for nested tables ("csv.separator")
  • Environment overrides: with prefix EXTKIT the key csv.separator is
    overridden by EXTKIT_CSV_SEPARATOR
  • Defaults for keys missing from the file
  • File discovery in the working directory and the user config directory
  • Reload on file change with change handlers
  • Thread-safe access

Loading:

	cfg, err := config.LoadWithOptions("extkit.toml", config.LoadOptions{
		EnvPrefix: "EXTKIT",
		Defaults: map[string]interface{}{
			"csv.separator": ";",
			"log.level":     "info",
		},
	})
	if err != nil {
		return err
	}

	sep := cfg.GetString("csv.separator")

Discovery:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

Discover never fails for a missing file unless Required is set; it then
returns a configuration holding only the defaults and environment
overrides.

Watching:

	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		logger.Info("config changed")
	})
	if err := cfg.Watch(); err != nil {
		return err
	}
	defer cfg.StopWatching()

Handlers run in their own goroutine and receive detached snapshots.

Example extkit.toml:

	[log]
	level = "debug"
	format = "text"

	[csv]
	separator = ";"
	infer_types = true

	[store]
	path = "./data/tables.db"

Errors use the core/error codes: CONFIG_ERROR for unreadable or invalid
files, NOT_FOUND for a missing explicit path and MISSING_CONFIG when
discovery is required but finds nothing.
*/
package config
