package main

// Exit codes. Fetch failures are distinguished so scripts can tell a missing
// credential from an unreachable provider or an empty result.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitAuthError   = 2 // Missing or rejected provider credential
	ExitUpstream    = 3 // Provider unreachable or returned a failure status
	ExitEmptyResult = 4 // Provider returned zero interactions
	ExitNotFound    = 5 // Named network not in the local store
)
