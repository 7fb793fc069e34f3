package restclient

import "net/http"

// Request describes an outbound HTTP request. A Request is built per call
// and discarded once the client has consumed it.
type Request struct {
	// Method is the HTTP method (GET, POST, DELETE).
	Method string
	// Address is the target URL. Relative addresses are resolved against
	// the client's BaseURL.
	Address string
	// Headers are request-specific headers (merged over client defaults).
	Headers map[string]string
	// Body is the JSON-encoded request body, nil for bodyless requests.
	Body []byte
}

// Response is the raw result of an HTTP request, produced by the transport
// and consumed by status validation and the codec.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true for the two status codes treated as success.
// Everything else, including other 2xx codes, is classified as an error.
func (r *Response) IsSuccess() bool {
	return r.StatusCode == http.StatusOK || r.StatusCode == http.StatusCreated
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
