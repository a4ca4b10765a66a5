// Package redact scrubs sensitive values from strings before they are
// logged or returned in error responses: provider API keys, bearer
// tokens, password fragments and database connection strings.
package redact

import "regexp"

// Placeholder replaces every redacted match.
const Placeholder = "[REDACTED]"

// Precompiled patterns, applied in order.
var patterns = []*regexp.Regexp{
	// Database connection strings with inline credentials
	regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb)://[^@\s]+@`),

	// JWTs: three base64url segments starting with the "eyJ" header
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),

	// Provider API keys (OpenAI-style sk-..., Google AIza...)
	regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}\b`),
	regexp.MustCompile(`\bAIza[A-Za-z0-9_-]{16,}\b`),

	// Generic key/secret/token assignments
	regexp.MustCompile(`(?i)(api[_-]?key|secret|token|password|passwd)(['"\s:=]+)[^'"&\s]{6,}`),
}

// String returns s with every sensitive match replaced by Placeholder.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, Placeholder)
	}
	return s
}

// Error redacts an error's message. Returns the empty string for a nil
// error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
