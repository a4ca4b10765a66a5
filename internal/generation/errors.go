package generation

import "errors"

// Common errors returned by adapters and the dispatcher.
var (
	// ErrUpstreamFailure is returned when the backing generation service
	// errors (network failure, quota, rejected request). The dispatcher
	// converts it into a degraded output rather than propagating it.
	ErrUpstreamFailure = errors.New("upstream generation service failed")

	// ErrNotConfigured is returned by an adapter whose required
	// credential is absent. For text kinds this is the one failure the
	// dispatcher surfaces as a hard error; media kinds degrade.
	ErrNotConfigured = errors.New("provider credential not configured")

	// ErrInvalidResponse is returned when an upstream response cannot be
	// parsed or carries no usable result.
	ErrInvalidResponse = errors.New("invalid response from generation service")
)
