// Package errs defines the five error taxonomies raised across this
// module (problem, subset, search, tempering): ConfigurationError,
// SolutionModificationError, IncompatibleDelta, SearchException, and
// StatusError. Each is a concrete exported type implementing error, so
// callers can use errors.As to recover the taxonomy instead of
// string-matching messages. ConfigurationError and SearchException may
// wrap a cause and also implement Unwrap; the other three carry no cause.
//
// None of these are retried internally: a ConfigurationError aborts a
// constructor before the object is created; an IncompatibleDelta or
// SearchException aborts the current Search.Start() call; a StatusError
// is rejected without side effects. Recovery is always the caller's
// responsibility.
package errs
