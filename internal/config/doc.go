// Package config handles loading, parsing, and validating application
// configuration from environment variables and optional config files.
// Settings are grouped by concern (server, LLM backend, content pipeline)
// and validated with struct tags before the application starts.
package config
