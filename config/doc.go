// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for
//              applications using INI files. Features include automatic file
//              discovery, environment variable overrides, hot-reloading, and
//              type-safe access over the parsed document.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

/*
Package config provides configuration management on top of the ini parser.

Key Features:
  • INI file loading with structured parse errors
  • Automatic file discovery in standard locations (.ini, .cfg, .conf)
  • Environment variable override with optional prefix
  • Defaults per lookup key plus per-call fallback values
  • Hot-reloading with change notification callbacks
  • Thread-safe concurrent access patterns

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := config.Load("app.ini")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	dbHost := cfg.GetString("database.host", "localhost")
	dbPort := cfg.GetInt("database.port", 5432)
	verbose := cfg.GetBool("logging.verbose", false)

Keys of the form "section.member" address a member inside the named section.
A plain key falls back to the first matching member across all sections in
file order.

# Environment Variable Integration

Configuration values are overridden by environment variables following a
consistent naming convention:

	# app.ini
	[database]
	host = "localhost"
	port = 5432

	# Environment variables (with optional prefix)
	export MYAPP_DATABASE_HOST="prod-db.example.com"

	cfg, _ := config.LoadWithOptions("app.ini", config.LoadOptions{
		EnvPrefix: "MYAPP",
	})

	host := cfg.GetString("database.host") // Returns "prod-db.example.com"

# Hot-Reloading and Change Notifications

Monitor configuration files for changes with automatic reloading:

	cfg, err := config.LoadWithOptions("app.ini", config.LoadOptions{
		Watch: true,
	})

	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		if oldCfg.GetString("database.host") != newCfg.GetString("database.host") {
			// Handle database reconnection
		}
	})

# File Discovery

Search standard locations for a configuration file:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions("myapp"))

The defaults try the working directory, ./config, ~/.myapp, and /etc/myapp
with the filenames myapp and config and the extensions .ini, .cfg, and .conf.
*/
package config
