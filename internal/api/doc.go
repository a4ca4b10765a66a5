// Package api contains the HTTP handlers, request/response models and
// error mapping for the GUUK API. Handlers stay thin: they decode and
// validate a request, call a service, and translate the result into a
// JSON response.
package api
