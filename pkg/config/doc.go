// Package config handles configuration management for bombuilder.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML or YAML files, environment variables, and
// command-line flags, in that order of precedence (lowest first).
package config
