package signedrequest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign computes the base64-encoded HMAC-SHA256 digest over the
// canonical serialization of p using secret. Any existing signature
// entry in p is ignored. The caller is responsible for setting
// KeyIssuedAt before signing and for attaching the returned digest
// under KeySignature.
func Sign(p Params, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	canonical, err := Canonicalize(p)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(computeHMAC([]byte(secret), []byte(canonical))), nil
}

func computeHMAC(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)

	return h.Sum(nil)
}
