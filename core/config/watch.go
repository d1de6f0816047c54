// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Reloads the configuration file on change using fsnotify and
//              notifies registered change handlers.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-30
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-30 v0.1.0: Polling watcher
// - 2026-10-12 v0.2.0: Switched to fsnotify directory watch
// - 2026-10-18 v0.2.1: Reload re-applies defaults

package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/stringx"
)

// Watch starts reloading the configuration whenever its file changes.
// The parent directory is watched so editors that replace the file by
// rename are still picked up.
func (c *Config) Watch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stringx.IsBlank(c.filePath) {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Watch")
	}
	if c.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	c.watcher = watcher
	c.done = make(chan struct{})
	go c.watchLoop(watcher, c.done, filepath.Clean(c.filePath))

	return nil
}

func (c *Config) watchLoop(watcher *fsnotify.Watcher, done chan struct{}, target string) {
	logger := log.GetDefault().WithName("config").WithField("filePath", target)

	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := c.reload(); err != nil {
				logger.WarnWithErr("config reload failed", err)
				continue
			}
			logger.Debug("config reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.WarnWithErr("config watcher error", err)
		}
	}
}

// StopWatching stops file watching. It is safe to call more than once.
func (c *Config) StopWatching() {
	c.mu.Lock()
	watcher, done := c.watcher, c.done
	c.watcher, c.done = nil, nil
	c.mu.Unlock()

	if watcher == nil {
		return
	}
	close(done)
	watcher.Close()
}

// IsWatching returns whether the configuration file is being watched
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}

// reload reloads the configuration from the file and notifies handlers
func (c *Config) reload() error {
	c.mu.RLock()
	filePath, format := c.filePath, c.format
	c.mu.RUnlock()

	info, err := os.Stat(filePath)
	if err != nil {
		return mdwerror.Wrap(err, "config file unavailable during reload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	newData, err := parseContent(content, format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.reload").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	c.mu.Lock()
	oldConfig := c.snapshot()
	c.data = mergeDefaults(newData, c.defaults)
	c.lastModified = info.ModTime()
	newConfig := c.snapshot()
	handlers := make([]ChangeHandler, len(c.watchers))
	copy(handlers, c.watchers)
	c.mu.Unlock()

	for _, handler := range handlers {
		go handler(oldConfig, newConfig)
	}

	return nil
}

// snapshot copies the current state; the caller holds c.mu
func (c *Config) snapshot() *Config {
	return &Config{
		data:         deepCopyMap(c.data),
		filePath:     c.filePath,
		format:       c.format,
		envPrefix:    c.envPrefix,
		defaults:     c.defaults,
		lastModified: c.lastModified,
	}
}
