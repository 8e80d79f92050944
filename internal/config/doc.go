// Package config loads gitprovider settings.
//
// Settings come from, in increasing precedence:
//   - built-in defaults
//   - a config file (--config, or ~/.gitprovider/config.{yaml,toml,json})
//   - GITPROVIDER_* environment variables, with "." replaced by "_"
//     (GITPROVIDER_GIT_TIMEOUT, GITPROVIDER_LOG_FILE, ...)
package config
