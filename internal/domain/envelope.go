package domain

// RequestEnvelope is a transport-ready description of one API call: the
// full URL (method and auth arguments already in the query string) and
// the serialized, possibly encrypted, POST body. Envelopes are built per
// call and discarded; they are never persisted.
type RequestEnvelope struct {
	URL    string
	Method string
	Body   string
}
