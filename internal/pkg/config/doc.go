// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from defaults, an optional config file, CRYPTO_TESTER_ prefixed
// environment variables and bound command-line flags, then validated before use.
package config
