// File: discovery.go
// Title: Configuration File Discovery
// Description: Implements automatic configuration file discovery in standard
//              locations with configurable paths, filenames, and extensions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	liberror "github.com/msto63/libini/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Search paths in priority order
	Filenames  []string // Base filenames to look for
	Extensions []string // File extensions to try
	Required   bool     // Whether a config file must be found
}

// DefaultDiscoveryOptions returns sensible defaults for file discovery
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	homeDir, _ := os.UserHomeDir()

	return DiscoveryOptions{
		Paths: []string{
			".",
			"./config",
			filepath.Join(homeDir, "."+appName),
			filepath.Join("/etc", appName),
		},
		Filenames: []string{
			appName,
			"config",
		},
		Extensions: []string{".ini", ".cfg", ".conf"},
		Required:   false,
	}
}

// Discover searches for a configuration file using the given options and
// loads the first one found
func Discover(options DiscoveryOptions) (*Config, error) {
	return DiscoverWithOptions(options, LoadOptions{})
}

// DiscoverWithOptions searches for a configuration file and loads it with
// custom load options
func DiscoverWithOptions(discovery DiscoveryOptions, load LoadOptions) (*Config, error) {
	path, err := FindConfigFile(discovery)
	if err != nil {
		return nil, err
	}
	if path == "" {
		// Not found and not required, start from empty content
		return LoadFromString("")
	}
	return LoadWithOptions(path, load)
}

// FindConfigFile returns the first existing configuration file matching the
// discovery options, or an empty string when none is found and the search is
// not marked required
func FindConfigFile(options DiscoveryOptions) (string, error) {
	tried := make([]string, 0)

	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				tried = append(tried, candidate)

				info, err := os.Stat(candidate)
				if err == nil && !info.IsDir() {
					return candidate, nil
				}
			}
		}
	}

	if options.Required {
		return "", liberror.New(fmt.Sprintf("no config file found, tried: %s", strings.Join(tried, ", "))).
			WithCode(liberror.CodeNotFound).
			WithOperation("config.FindConfigFile").
			WithDetail("searchPaths", strings.Join(options.Paths, ", "))
	}

	return "", nil
}
