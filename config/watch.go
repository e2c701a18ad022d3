// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot-reloading and automatic configuration updates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"strings"
	"time"

	liberror "github.com/msto63/libini/core/error"
)

// startWatching starts monitoring the configuration file for changes
func (c *Config) startWatching() error {
	if strings.TrimSpace(c.filePath) == "" {
		return liberror.New("file path required for watching").
			WithCode(liberror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	// Simple polling-based watcher (can be enhanced with fsnotify later)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if !c.IsWatching() {
			break
		}

		// Check if file was modified
		fileInfo, err := os.Stat(c.filePath)
		if err != nil {
			// File might have been deleted or moved
			continue
		}

		c.mu.RLock()
		lastModified := c.lastModified
		c.mu.RUnlock()

		if fileInfo.ModTime().After(lastModified) {
			// File was modified - reload configuration
			if err := c.reload(); err != nil {
				// Keep watching, the next write may parse again
				continue
			}
		}
	}

	return nil
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	newDoc, err := c.parser.ParseFile(c.filePath)
	if err != nil {
		return liberror.Wrap(err, "failed to parse config file during reload").
			WithCode(liberror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	c.mu.Lock()
	oldConfig := &Config{
		doc:       c.doc,
		filePath:  c.filePath,
		envPrefix: c.envPrefix,
		defaults:  c.defaults,
		parser:    c.parser,
	}

	c.doc = newDoc
	fileInfo, _ := os.Stat(c.filePath)
	if fileInfo != nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Copy watchers to avoid holding the lock during callbacks
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)

	newConfig := &Config{
		doc:       newDoc,
		filePath:  c.filePath,
		envPrefix: c.envPrefix,
		defaults:  c.defaults,
		parser:    c.parser,
	}
	c.mu.Unlock()

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
