package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	storage := NewMemoryStorage()
	c := New(ts.URL, storage)

	assert.NoError(t, c.do(context.Background(), "GET", "/api/information", nil, nil))
	assert.Empty(t, gotAuth, "no token yet")

	assert.NoError(t, c.setToken("token-123"))
	assert.NoError(t, c.do(context.Background(), "GET", "/api/information", nil, nil))
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestErrorDetailString(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code": 1203, "detail": "the request already has an active pledge"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, NewMemoryStorage())

	err := c.do(context.Background(), "POST", "/", nil, nil)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok, "wrong error type")
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, int64(1203), apiErr.Code)
	assert.Equal(t, "the request already has an active pledge", apiErr.Detail)
}

func TestErrorDetailValidationArray(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": 1010, "detail": [{"msg": "phone is required"}, {"msg": "category is required"}]}`))
	}))
	defer ts.Close()

	c := New(ts.URL, NewMemoryStorage())

	err := c.do(context.Background(), "POST", "/", nil, nil)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok, "wrong error type")
	assert.Equal(t, "phone is required; category is required", apiErr.Detail)
}

func TestErrorDetailArbitraryObject(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code": 999, "detail": {"pg": "deadlock detected"}}`))
	}))
	defer ts.Close()

	c := New(ts.URL, NewMemoryStorage())

	err := c.do(context.Background(), "POST", "/", nil, nil)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok, "wrong error type")
	assert.Contains(t, apiErr.Detail, "deadlock detected")
}

func TestErrorNonJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer ts.Close()

	c := New(ts.URL, NewMemoryStorage())

	err := c.do(context.Background(), "GET", "/", nil, nil)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok, "wrong error type")
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Detail)
}

func TestNoContentLeavesResultZero(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, NewMemoryStorage())

	var result struct {
		Count int `json:"count"`
	}
	assert.NoError(t, c.do(context.Background(), "GET", "/", nil, &result))
	assert.Zero(t, result.Count)
}
