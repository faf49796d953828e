// Package config provides configuration management for egeria-in-go.
//
// Configuration is read from egeria.yml in EGERIA_CONFIG_PATH (default
// /etc/egeria/config) and then overridden by environment variables. Every
// attribute remembers whether its value came from the default, the file or
// the environment.
//
// # Key Configuration Options
//
//   - EGERIA_PLATFORM_URL: OMAG server platform root URL
//   - EGERIA_SERVER_NAME: metadata access server name
//   - EGERIA_USER_ID, EGERIA_PASSWORD: caller identity
//   - DATABASE_URL: default catalog target
//   - EGERIA_REFRESH_INTERVAL: time between harvest sweeps
//   - EGERIA_SURVEY_LOG_DIR: directory holding survey profile logs
//   - EGERIA_LOG_LEVEL: logging verbosity
package config
