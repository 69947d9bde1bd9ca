package signedrequest

import (
	"net/url"
	"slices"
	"strings"
)

// Reserved parameter keys. KeySignature is always excluded from the
// canonicalization input and re-appended last when reconstructing a
// transmitted request string.
const (
	KeySignature = "signature"
	KeyIssuedAt  = "issuedAt"
)

// Params is a flat parameter set: either an inbound signed payload or
// the outbound parameters being signed. Order is irrelevant;
// canonicalization imposes one.
type Params map[string]string

// PercentEncode escapes s for use in a canonical string. On top of
// standard URI component escaping it also escapes the characters
// ! ' ( ) * and encodes space as %20. Both sides of the protocol must
// use this exact escape set or signatures will never match.
func PercentEncode(s string) string {
	// QueryEscape leaves only [A-Za-z0-9-_.~] unescaped, which already
	// covers the extended set; it encodes space as '+' though.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Canonicalize serializes p into the canonical string used as HMAC
// input: key=value pairs percent-encoded on both sides, sorted by
// ascending key, joined by "&". The reserved signature entry is
// excluded. Returns ErrEmptyKey if p contains an empty key.
func Canonicalize(p Params) (string, error) {
	keys := make([]string, 0, len(p))

	for key := range p {
		if key == "" {
			return "", ErrEmptyKey
		}

		if key == KeySignature {
			continue
		}

		keys = append(keys, key)
	}

	slices.Sort(keys)

	var b strings.Builder

	for i, key := range keys {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(PercentEncode(key))
		b.WriteByte('=')
		b.WriteString(PercentEncode(p[key]))
	}

	return b.String(), nil
}

// BuildSignedRequestString reconstructs the exact string a client
// transmits: the canonical serialization of p with the existing
// signature entry, if present, re-appended as the final pair. It does
// not compute a signature itself.
func BuildSignedRequestString(p Params) (string, error) {
	canonical, err := Canonicalize(p)
	if err != nil {
		return "", err
	}

	sig, ok := p[KeySignature]
	if !ok {
		return canonical, nil
	}

	var b strings.Builder
	b.Grow(len(canonical) + len(KeySignature) + len(sig) + 2)
	b.WriteString(canonical)

	if canonical != "" {
		b.WriteByte('&')
	}

	b.WriteString(KeySignature)
	b.WriteByte('=')
	b.WriteString(PercentEncode(sig))

	return b.String(), nil
}
