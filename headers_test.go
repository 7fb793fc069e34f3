package restclient

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest_BasicAuth(t *testing.T) {
	c, err := New(Config{Username: "user", Password: "secret"})
	require.NoError(t, err)

	req, buildErr := c.buildRequest(context.Background(), Request{
		Method:  http.MethodGet,
		Address: "https://api.example.com/posts/1",
	})
	require.Nil(t, buildErr)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:secret"))
	assert.Equal(t, want, req.Header.Get("Authorization"))
}

func TestBuildRequest_NoAuthWithoutBothCredentials(t *testing.T) {
	for _, cfg := range []Config{
		{Username: "user"},
		{Password: "secret"},
		{},
	} {
		c, err := New(cfg)
		require.NoError(t, err)

		req, buildErr := c.buildRequest(context.Background(), Request{
			Method:  http.MethodGet,
			Address: "https://api.example.com/",
		})
		require.Nil(t, buildErr)
		assert.Empty(t, req.Header.Get("Authorization"))
	}
}

func TestBuildRequest_BadCredentialToken(t *testing.T) {
	c, err := New(Config{Username: "user", Password: string([]byte{0xff, 0xfe})})
	require.NoError(t, err)

	_, buildErr := c.buildRequest(context.Background(), Request{
		Method:  http.MethodGet,
		Address: "https://api.example.com/",
	})
	require.NotNil(t, buildErr)
	assert.Equal(t, ErrCodeBadCredentialToken, buildErr.Code)
}

func TestBuildRequest_UserAgent(t *testing.T) {
	c, err := New(Config{UserAgent: "restclient-test/1.0"})
	require.NoError(t, err)

	req, buildErr := c.buildRequest(context.Background(), Request{
		Method:  http.MethodGet,
		Address: "https://api.example.com/",
	})
	require.Nil(t, buildErr)
	assert.Equal(t, "restclient-test/1.0", req.Header.Get("User-Agent"))
}

func TestBuildRequest_InvalidAddress(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	for _, address := range []string{"", "not a url", "://bad", "/relative/only"} {
		_, buildErr := c.buildRequest(context.Background(), Request{
			Method:  http.MethodGet,
			Address: address,
		})
		require.NotNil(t, buildErr, "address %q should be rejected", address)
		assert.Equal(t, ErrCodeInvalidAddress, buildErr.Code)
		assert.Equal(t, address, buildErr.Address)
	}
}

func TestBuildRequest_ContentTypeOnlyWithBody(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	withBody, buildErr := c.buildRequest(context.Background(), Request{
		Method:  http.MethodPost,
		Address: "https://api.example.com/posts",
		Body:    []byte(`{"title":"foo"}`),
	})
	require.Nil(t, buildErr)
	assert.Equal(t, "application/json", withBody.Header.Get("Content-Type"))

	withoutBody, buildErr := c.buildRequest(context.Background(), Request{
		Method:  http.MethodGet,
		Address: "https://api.example.com/posts",
	})
	require.Nil(t, buildErr)
	assert.Empty(t, withoutBody.Header.Get("Content-Type"))
}

func TestBuildRequest_HeaderPrecedence(t *testing.T) {
	c, err := New(Config{Headers: map[string]string{
		"Accept":    "application/json",
		"X-Api-Key": "default",
	}})
	require.NoError(t, err)

	req, buildErr := c.buildRequest(context.Background(), Request{
		Method:  http.MethodGet,
		Address: "https://api.example.com/",
		Headers: map[string]string{"X-Api-Key": "override"},
	})
	require.Nil(t, buildErr)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "override", req.Header.Get("X-Api-Key"))
}

func TestBuildRequest_RequestID(t *testing.T) {
	c, err := New(Config{}, WithRequestID())
	require.NoError(t, err)

	req, buildErr := c.buildRequest(context.Background(), Request{
		Method:  http.MethodGet,
		Address: "https://api.example.com/",
	})
	require.Nil(t, buildErr)

	id := req.Header.Get("X-Request-Id")
	require.NotEmpty(t, id)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)

	// Caller-provided IDs are kept.
	req, buildErr = c.buildRequest(context.Background(), Request{
		Method:  http.MethodGet,
		Address: "https://api.example.com/",
		Headers: map[string]string{"X-Request-Id": "caller-id"},
	})
	require.Nil(t, buildErr)
	assert.Equal(t, "caller-id", req.Header.Get("X-Request-Id"))
}

func TestResolveAddress_BaseURL(t *testing.T) {
	c, err := New(Config{BaseURL: "https://api.example.com/"})
	require.NoError(t, err)

	target, addrErr := c.resolveAddress("/posts/1")
	require.Nil(t, addrErr)
	assert.Equal(t, "https://api.example.com/posts/1", target)

	// Absolute addresses bypass the base URL.
	target, addrErr = c.resolveAddress("https://other.example.com/posts/1")
	require.Nil(t, addrErr)
	assert.Equal(t, "https://other.example.com/posts/1", target)
}
