// Package config defines the application's configuration structure and
// loading logic. Configuration comes from environment variables (GUUK_
// prefix) layered over an optional YAML file, and is validated before
// the application starts.
package config
