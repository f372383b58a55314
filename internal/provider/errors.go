package provider

import "errors"

// Common errors returned by provider adapters.
var (
	// ErrAuthentication indicates a missing or rejected access credential.
	ErrAuthentication = errors.New("provider authentication failed")

	// ErrUpstreamUnavailable indicates a network failure or a non-success
	// HTTP status from the provider.
	ErrUpstreamUnavailable = errors.New("provider unavailable")

	// ErrEmptyResult indicates the provider answered successfully but
	// returned zero interactions. Reportable, not fatal: callers must
	// distinguish "no data" from "error".
	ErrEmptyResult = errors.New("provider returned no interactions")

	// ErrInvalidResponse indicates a response body that could not be
	// decoded into the provider's documented schema.
	ErrInvalidResponse = errors.New("invalid provider response")
)

// IsAuthentication returns true if the error indicates a credential problem.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsUpstreamUnavailable returns true if the error indicates the provider
// could not be reached or answered with a failure status.
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsEmptyResult returns true if the error indicates an empty, otherwise
// successful provider response.
func IsEmptyResult(err error) bool {
	return errors.Is(err, ErrEmptyResult)
}
