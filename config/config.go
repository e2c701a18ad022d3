// File: config.go
// Title: Configuration Access Implementation
// Description: Implements the Config type for loading and accessing INI
//              configuration files: dot-path and flat member addressing,
//              environment variable overrides, defaults, and typed getters
//              over the parsed document.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation over the ini parser

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	liberror "github.com/msto63/libini/core/error"
	"github.com/msto63/libini/ini"
)

// Config represents a loaded INI configuration with thread-safe access
type Config struct {
	mu           sync.RWMutex
	doc          *ini.Document
	filePath     string
	envPrefix    string
	defaults     map[string]interface{}
	watchers     []ChangeHandler
	watching     bool
	lastModified time.Time
	parser       *ini.Parser
}

// ChangeHandler is called when configuration changes are detected
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Fallback values per lookup key
	Watch     bool                   // Enable file watching (default: false)
}

// Load loads configuration from an INI file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from an INI file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, liberror.New("config file path cannot be empty").
			WithCode(liberror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, liberror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(liberror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	parser := ini.New(ini.Options{})
	doc, err := parser.ParseFile(filePath)
	if err != nil {
		return nil, liberror.Wrap(err, "failed to parse config file").
			WithCode(liberror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	fileInfo, _ := os.Stat(filePath)
	lastModified := time.Time{}
	if fileInfo != nil {
		lastModified = fileInfo.ModTime()
	}

	config := &Config{
		doc:          doc,
		filePath:     filePath,
		envPrefix:    options.EnvPrefix,
		defaults:     options.Defaults,
		watchers:     make([]ChangeHandler, 0),
		watching:     options.Watch,
		lastModified: lastModified,
		parser:       parser,
	}

	if options.Watch {
		go config.startWatching()
	}

	return config, nil
}

// LoadFromString loads configuration from in-memory INI content
func LoadFromString(content string) (*Config, error) {
	parser := ini.New(ini.Options{})
	doc, err := parser.ParseString(content)
	if err != nil {
		return nil, liberror.Wrap(err, "failed to parse config from string").
			WithCode(liberror.CodeConfigError).
			WithOperation("config.LoadFromString")
	}

	return &Config{
		doc:      doc,
		watchers: make([]ChangeHandler, 0),
		parser:   parser,
	}, nil
}

// lookup resolves a key to a leaf. A key of the form "section.member"
// addresses the member inside the named section; a plain key falls back to
// the first matching member across all sections in file order.
func (c *Config) lookup(key string) (ini.Leaf, bool) {
	if section, member, ok := strings.Cut(key, "."); ok {
		if s, found := c.doc.Section(section); found {
			if leaf, found := s.Lookup(member); found {
				return leaf, true
			}
		}
		return ini.Leaf{}, false
	}

	return c.doc.Lookup(key)
}

// GetString returns a string configuration value with optional default.
// Values of any kind are returned in their display form.
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	if leaf, ok := c.lookup(key); ok {
		return leaf.Value.Raw()
	}

	if v, ok := c.defaults[key]; ok {
		return fmt.Sprintf("%v", v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetNumber returns a float64 configuration value with optional default
func (c *Config) GetNumber(key string, defaultValue ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	if leaf, ok := c.lookup(key); ok {
		if n, err := leaf.Value.Number(); err == nil {
			return n
		}
		// Numeric text in a string or identifier leaf still counts
		if floatVal, err := strconv.ParseFloat(leaf.Value.Raw(), 64); err == nil {
			return floatVal
		}
	}

	if v, ok := c.defaults[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0.0
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	if leaf, ok := c.lookup(key); ok {
		if n, err := leaf.Value.Number(); err == nil {
			return int(n)
		}
		if intVal, err := strconv.Atoi(leaf.Value.Raw()); err == nil {
			return intVal
		}
	}

	if v, ok := c.defaults[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default.
// INI has no boolean kind; bare or quoted true/false text is interpreted.
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	if leaf, ok := c.lookup(key); ok {
		if boolVal, err := strconv.ParseBool(leaf.Value.Raw()); err == nil {
			return boolVal
		}
	}

	if v, ok := c.defaults[key]; ok {
		if b, isBool := v.(bool); isBool {
			return b
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// getEnvValue retrieves the environment variable override for a key
func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format:
// database.host -> DATABASE_HOST, with prefix MYAPP -> MYAPP_DATABASE_HOST
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists in the document
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.lookup(key)
	return ok
}

// Sections returns the section names in file order, repeats included
func (c *Config) Sections() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.doc.Sections))
	for i := range c.doc.Sections {
		names = append(names, c.doc.Sections[i].Name)
	}
	return names
}

// Document returns the underlying parsed document
func (c *Config) Document() *ini.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.doc
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// OnChange registers a change handler for configuration updates
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchers = append(c.watchers, handler)
}

// Convenience methods for shorter access patterns

// S is a short alias for GetString
func (c *Config) S(key string, defaultValue ...string) string {
	return c.GetString(key, defaultValue...)
}

// N is a short alias for GetNumber
func (c *Config) N(key string, defaultValue ...float64) float64 {
	return c.GetNumber(key, defaultValue...)
}

// I is a short alias for GetInt
func (c *Config) I(key string, defaultValue ...int) int {
	return c.GetInt(key, defaultValue...)
}

// B is a short alias for GetBool
func (c *Config) B(key string, defaultValue ...bool) bool {
	return c.GetBool(key, defaultValue...)
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{"Config{format: ini"}

	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}

	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}

	if c.watching {
		parts = append(parts, "watching: true")
	}

	parts = append(parts, fmt.Sprintf("sections: %d}", len(c.doc.Sections)))

	return strings.Join(parts, ", ")
}
