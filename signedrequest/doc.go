// Package signedrequest implements the netgrid signed-request protocol
// used to authenticate payloads the platform delivers to third-party
// applications.
//
// A signed request is a flat set of string parameters carrying two
// reserved entries: "signature", a base64-encoded HMAC-SHA256 digest,
// and "issuedAt", the issuance timestamp in epoch milliseconds. The
// digest is computed over the canonical serialization of all other
// parameters: key=value pairs percent-encoded on both sides, sorted by
// ascending key, joined by "&".
//
// # Verifying Inbound Payloads
//
// The platform delivers signed requests as POST form data. Verify the
// parameter set with the application secret:
//
//	params := signedrequest.Params{
//	    "networkId": "42",
//	    "userId":    "7",
//	    "issuedAt":  "1756500000000",
//	    "signature": "qL7p...",
//	}
//
//	if err := signedrequest.Verify(params, appSecret); err != nil {
//	    // InvalidSignature or ExpiredSignature.
//	}
//
// Verification succeeds only when the recomputed digest matches the
// supplied signature exactly and the payload is no older than
// SignatureMaxAge. Signatures are compared in constant time. No nonce
// cache is kept, so a captured payload replays within the window; the
// short window is the accepted bound on replay risk.
//
// # HTTP Middleware
//
// Middleware wraps an http.Handler and verifies the form payload of
// each request before it reaches the handler. On success the verified
// identity is available from the request context:
//
//	mw, err := signedrequest.Middleware(signedrequest.MiddlewareConfig{
//	    Secret: appSecret,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    id := signedrequest.IdentityFromContext(r.Context())
//	    fmt.Fprintf(w, "hello network %s user %s", id.NetworkID, id.UserID)
//	}))
//
// # Signing
//
// Sign produces the digest for a parameter set, for the platform side
// of the protocol and for tests:
//
//	params[signedrequest.KeyIssuedAt] = strconv.FormatInt(time.Now().UnixMilli(), 10)
//	sig, err := signedrequest.Sign(params, appSecret)
//	params[signedrequest.KeySignature] = sig
//
// All functions in this package are pure computations over their
// inputs and safe for concurrent use.
package signedrequest
