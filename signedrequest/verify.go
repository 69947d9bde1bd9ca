package signedrequest

import (
	"crypto/hmac"
	"fmt"
	"strconv"
	"time"
)

// SignatureMaxAge is the freshness window of a signed payload. A
// payload older than issuedAt + SignatureMaxAge is rejected.
const SignatureMaxAge = 60 * time.Second

// Verify checks that p carries a valid, fresh signature for secret.
//
// The digest is recomputed over the canonical serialization of p
// (signature entry excluded) and compared in constant time against
// p[KeySignature]; a mismatch returns ErrSignatureInvalid. The payload
// age is then checked against SignatureMaxAge using p[KeyIssuedAt]
// (epoch milliseconds); a stale, missing, or malformed timestamp
// returns an error wrapping ErrSignatureExpired.
func Verify(p Params, secret string) error {
	return verifyAt(p, secret, time.Now())
}

func verifyAt(p Params, secret string, now time.Time) error {
	expected, err := Sign(p, secret)
	if err != nil {
		return err
	}

	if !hmac.Equal([]byte(expected), []byte(p[KeySignature])) {
		return ErrSignatureInvalid
	}

	raw, ok := p[KeyIssuedAt]
	if !ok {
		return fmt.Errorf("%w: missing %s parameter", ErrSignatureExpired, KeyIssuedAt)
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid %s timestamp", ErrSignatureExpired, KeyIssuedAt)
	}

	issuedAt := time.UnixMilli(millis)
	if now.After(issuedAt.Add(SignatureMaxAge)) {
		return ErrSignatureExpired
	}

	return nil
}
