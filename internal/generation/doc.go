// Package generation provides the provider-agnostic content generation
// core: the Adapter contract implemented once per (kind, provider) pair,
// a registry of adapters populated at startup, the dispatcher that turns
// adapter failures into degraded-but-persistable results, and the pure
// normalizer that assembles canonical history entries.
package generation
