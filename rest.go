package restclient

import (
	"context"
	"net/http"
)

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, c *Client, address string) (T, error) {
	var zero T

	resp, err := c.Do(ctx, Request{
		Method:  http.MethodGet,
		Address: address,
	})
	if err != nil {
		return zero, err
	}

	return decodeBody[T](resp)
}

// Post encodes payload as the JSON request body, performs a POST request,
// and decodes the JSON response into type T.
func Post[T any](ctx context.Context, c *Client, address string, payload any) (T, error) {
	var zero T

	body, encErr := encodeJSON(payload)
	if encErr != nil {
		return zero, encErr
	}

	resp, err := c.Do(ctx, Request{
		Method:  http.MethodPost,
		Address: address,
		Body:    body,
	})
	if err != nil {
		return zero, err
	}

	return decodeBody[T](resp)
}

// Delete performs a DELETE request. The response body, if any, is discarded
// without decoding.
func Delete(ctx context.Context, c *Client, address string) error {
	_, err := c.Do(ctx, Request{
		Method:  http.MethodDelete,
		Address: address,
	})
	return err
}

// decodeBody rejects empty success bodies and hands the rest to the codec.
func decodeBody[T any](resp *Response) (T, error) {
	var zero T

	if len(resp.Body) == 0 {
		return zero, NewEmptyBodyError(resp.StatusCode)
	}

	out, decErr := decodeJSON[T](resp.Body)
	if decErr != nil {
		return zero, decErr
	}

	return out, nil
}
