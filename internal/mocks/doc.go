// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock exposes overridable Fn fields; the zero
// value behaves as a benign no-op.
package mocks
