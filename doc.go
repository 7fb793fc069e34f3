// Package restclient provides a minimal JSON HTTP client with generic typed
// requests, consistent header construction (basic auth, user agent), and a
// single structured error type covering every failure mode: address and
// credential construction, transport, status classification, and the JSON
// codec.
//
// # Basic Usage
//
//	client, err := restclient.New(restclient.Config{
//	    Username:  "user",
//	    Password:  "secret",
//	    UserAgent: "my-app/1.0",
//	})
//
//	post, err := restclient.Get[Post](ctx, client, "https://api.example.com/posts/1")
//
//	created, err := restclient.Post[Created](ctx, client, "https://api.example.com/posts", NewPost{
//	    Title: "foo",
//	    Body:  "bar",
//	})
//
//	err = restclient.Delete(ctx, client, "https://api.example.com/posts/1")
//
// # Errors
//
// Every operation returns either a fully decoded value of the requested type
// or a *Error; there is no partial result. Callers branch on the error code
// via the Is helpers:
//
//	if restclient.IsUnhealthyStatus(err) {
//	    var e *restclient.Error
//	    errors.As(err, &e)
//	    log.Printf("HTTP %d: %s", e.StatusCode, e.Message)
//	}
//
// Only statuses 200 and 201 count as success. Required response fields are
// declared with `validate:"required"` struct tags; a missing key, a JSON
// null in a required slot, and a type mismatch are reported as distinct
// error codes carrying the offending key, field type, and raw body text.
//
// The client performs no retries and no logging of errors; all errors are
// terminal for the call that produced them.
package restclient
