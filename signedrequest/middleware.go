package signedrequest

import (
	"context"
	"net/http"
)

// Identity is the authenticated context carried by a verified signed
// request: which network and user the platform issued the payload for,
// and their locale.
type Identity struct {
	NetworkID string
	UserID    string
	Locale    string
}

// Parameter keys the platform uses for identity fields.
const (
	keyNetworkID = "networkId"
	keyUserID    = "userId"
	keyLocale    = "locale"
)

type identityKey struct{}

// IdentityFromContext returns the Identity stored in the context by
// Middleware. Returns the zero Identity if none is present.
func IdentityFromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey{}).(Identity); ok {
		return id
	}

	return Identity{}
}

// MiddlewareFunc wraps an http.Handler with additional behaviour.
type MiddlewareFunc func(next http.Handler) http.Handler

// MiddlewareConfig configures signed-request verification middleware.
type MiddlewareConfig struct {
	// Secret is the application secret used to verify payloads.
	// Required.
	Secret string

	// OnError is called when verification fails. When nil, a plain 401
	// Unauthorized response is sent.
	OnError func(w http.ResponseWriter, r *http.Request, err error)
}

// Middleware returns a MiddlewareFunc that verifies the form payload of
// each incoming request before passing it on. On success the verified
// Identity is stored in the request context.
//
// It returns ErrNoSecret if MiddlewareConfig.Secret is empty.
func Middleware(cfg MiddlewareConfig) (MiddlewareFunc, error) {
	if cfg.Secret == "" {
		return nil, ErrNoSecret
	}

	onError := cfg.OnError
	if onError == nil {
		onError = defaultOnError
	}

	secret := cfg.Secret

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				onError(w, r, err)
				return
			}

			params := make(Params, len(r.Form))
			for key := range r.Form {
				params[key] = r.Form.Get(key)
			}

			if err := Verify(params, secret); err != nil {
				onError(w, r, err)
				return
			}

			id := Identity{
				NetworkID: params[keyNetworkID],
				UserID:    params[keyUserID],
				Locale:    params[keyLocale],
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, id)))
		})
	}, nil
}

// defaultOnError writes a 401 Unauthorized response with no body.
func defaultOnError(w http.ResponseWriter, _ *http.Request, _ error) {
	w.WriteHeader(http.StatusUnauthorized)
}
