package signedrequest

import "errors"

// Verification errors.
var (
	// ErrSignatureInvalid is returned when the recomputed digest does not
	// match the supplied signature.
	ErrSignatureInvalid = errors.New("signedrequest: signature verification failed")

	// ErrSignatureExpired is returned when the payload is older than
	// SignatureMaxAge, or when its issuedAt parameter is missing or does
	// not parse to a valid instant.
	ErrSignatureExpired = errors.New("signedrequest: signature expired")
)

// Parameter errors.
var (
	// ErrEmptyKey is returned when a parameter set contains an empty key.
	ErrEmptyKey = errors.New("signedrequest: parameter key must not be empty")

	// ErrNoSecret is returned when an empty secret is supplied for
	// signing or verification.
	ErrNoSecret = errors.New("signedrequest: secret must not be empty")
)
