package apiclient

import "encoding/json"

// Result is the success side of an API call outcome.
type Result struct {
	// Status is the HTTP status code of the reply.
	Status int

	// Raw is the reply body. Nil for 204 No Content.
	Raw json.RawMessage

	// Value is the decoded JSON body, or the boolean true for 204
	// No Content.
	Value any
}

// Decode unmarshals the reply body into v, for callers that want a
// concrete type instead of the generic Value. Decoding the Raw body of
// a 204 reply returns an error.
func (r *Result) Decode(v any) error {
	return json.Unmarshal(r.Raw, v)
}
