package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

func TestPendingRequestRoundTrip(t *testing.T) {
	session := NewSession(New("http://aidlink.test", NewMemoryStorage()))

	assert.NoError(t, session.SavePendingRequest(RequestForm{
		Category: schema.CategoryFood,
		Quantity: 3,
	}))

	form, ok := session.PendingRequest()
	assert.True(t, ok)
	assert.Equal(t, schema.CategoryFood, form.Category)
	assert.Equal(t, 3, form.Quantity)
}

func TestPendingRequestExpiresAfterADay(t *testing.T) {
	storage := NewMemoryStorage()
	session := NewSession(New("http://aidlink.test", storage))

	stale, _ := json.Marshal(pendingRequest{
		Form:    RequestForm{Category: schema.CategoryWater},
		SavedAt: time.Now().Add(-25 * time.Hour),
	})
	assert.NoError(t, storage.Set(pendingRequestStorageKey, string(stale)))

	_, ok := session.PendingRequest()
	assert.False(t, ok, "stale draft should not resurface")

	_, stillStored := storage.Get(pendingRequestStorageKey)
	assert.False(t, stillStored, "stale draft should be dropped")
}

// after OTP verification the stashed guest form is submitted with the
// fresh session and then cleared
func TestVerifyOTPSubmitsPendingRequest(t *testing.T) {
	var submittedAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/otp/verify", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"jwt_token": "citizen-token",
			"expire_in": 86400,
			"user": {"id": "citizen-1", "role": "citizen"}
		}`))
	})
	mux.HandleFunc("/api/citizen/requests", func(w http.ResponseWriter, r *http.Request) {
		submittedAuth = r.Header.Get("Authorization")

		var form RequestForm
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, schema.CategoryShelter, form.Category)

		w.Write([]byte(`{"result": {"status": "pending", "tracking_code": "AR-2345678JKL"}}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	session := NewSession(New(ts.URL, NewMemoryStorage()))
	assert.NoError(t, session.SavePendingRequest(RequestForm{
		Category: schema.CategoryShelter,
	}))

	request, err := session.VerifyOTP(context.Background(), "+9779812345678", "482913")
	assert.NoError(t, err)
	assert.NotNil(t, request)
	assert.Equal(t, "AR-2345678JKL", request.TrackingCode)
	assert.Equal(t, "Bearer citizen-token", submittedAuth)

	_, ok := session.PendingRequest()
	assert.False(t, ok, "draft should be cleared after submit")
}

func TestVerifyOTPWithoutPendingRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"jwt_token": "citizen-token",
			"expire_in": 86400,
			"user": {"id": "citizen-1", "role": "citizen"}
		}`))
	}))
	defer ts.Close()

	session := NewSession(New(ts.URL, NewMemoryStorage()))

	request, err := session.VerifyOTP(context.Background(), "+9779812345678", "482913")
	assert.NoError(t, err)
	assert.Nil(t, request)
	assert.True(t, session.Authenticated())
}

// a too-short custom code never reaches the network
func TestSetAccessCodeRejectedClientSide(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid code must not be sent")
	}))
	defer ts.Close()

	c := New(ts.URL, NewMemoryStorage())

	err := c.Admin().SetAccessCode(context.Background(), Inspectors, "inspector-1", "custo")
	assert.Equal(t, store.ErrInvalidAccessCode, err)
}
