package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWithoutTokenStaysLoggedOut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a token")
	}))
	defer ts.Close()

	session := NewSession(New(ts.URL, NewMemoryStorage()))

	assert.NoError(t, session.Init(context.Background()))
	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User())
}

func TestInitRestoresSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"user": {"id": "citizen-1", "role": "citizen"}}`))
	}))
	defer ts.Close()

	storage := NewMemoryStorage()
	assert.NoError(t, storage.Set(tokenStorageKey, "stored-token"))

	session := NewSession(New(ts.URL, storage))

	assert.NoError(t, session.Init(context.Background()))
	assert.True(t, session.Authenticated())
	assert.Equal(t, "citizen-1", session.User().ID)
}

// an expired token clears silently, as if the user never logged in
func TestInitClearsExpiredToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 1003, "detail": "invalid token"}`))
	}))
	defer ts.Close()

	storage := NewMemoryStorage()
	assert.NoError(t, storage.Set(tokenStorageKey, "expired-token"))

	session := NewSession(New(ts.URL, storage))

	assert.NoError(t, session.Init(context.Background()))
	assert.False(t, session.Authenticated())

	_, hasToken := storage.Get(tokenStorageKey)
	assert.False(t, hasToken, "token should be cleared")
}

func TestLoginSetsUserWithoutExtraRoundTrip(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/auth/inspector", r.URL.Path)
		w.Write([]byte(`{
			"jwt_token": "fresh-token",
			"expire_in": 86400,
			"user": {"id": "inspector-1", "role": "inspector"}
		}`))
	}))
	defer ts.Close()

	storage := NewMemoryStorage()
	session := NewSession(New(ts.URL, storage))

	assert.NoError(t, session.LoginInspector(context.Background(), "+9779800000000", "W7K2M4P9QX"))
	assert.Equal(t, 1, calls, "login is one round trip")
	assert.True(t, session.Authenticated())
	assert.Equal(t, "inspector-1", session.User().ID)

	token, _ := storage.Get(tokenStorageKey)
	assert.Equal(t, "fresh-token", token)
}

func TestLogout(t *testing.T) {
	storage := NewMemoryStorage()
	assert.NoError(t, storage.Set(tokenStorageKey, "stored-token"))

	session := NewSession(New("http://aidlink.test", storage))
	assert.NoError(t, session.Logout())

	assert.False(t, session.Authenticated())
	_, hasToken := storage.Get(tokenStorageKey)
	assert.False(t, hasToken)
}
