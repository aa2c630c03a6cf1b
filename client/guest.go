package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aidlink-inc/aidlink-api/schema"
)

const (
	pendingRequestStorageKey = "aidlink.pending_request"
	pendingRequestTTL        = 24 * time.Hour
)

// pendingRequest wraps the guest's unfinished form with its save time
// so stale drafts do not resurface days later.
type pendingRequest struct {
	Form    RequestForm `json:"form"`
	SavedAt time.Time   `json:"saved_at"`
}

// SavePendingRequest stashes a guest's request form until the phone is
// verified
func (s *Session) SavePendingRequest(form RequestForm) error {
	encoded, err := json.Marshal(pendingRequest{
		Form:    form,
		SavedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	return s.client.storage.Set(pendingRequestStorageKey, string(encoded))
}

// PendingRequest returns the stashed form if one exists and is younger
// than 24 hours. Expired drafts are dropped on read.
func (s *Session) PendingRequest() (*RequestForm, bool) {
	raw, ok := s.client.storage.Get(pendingRequestStorageKey)
	if !ok {
		return nil, false
	}

	var pending pendingRequest
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		_ = s.client.storage.Delete(pendingRequestStorageKey)
		return nil, false
	}

	if time.Since(pending.SavedAt) > pendingRequestTTL {
		_ = s.client.storage.Delete(pendingRequestStorageKey)
		return nil, false
	}

	return &pending.Form, true
}

func (s *Session) ClearPendingRequest() error {
	return s.client.storage.Delete(pendingRequestStorageKey)
}

// OTPResponse reports when the issued code stops working
type OTPResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// RequestOTP asks the server to text a login code to the phone
func (s *Session) RequestOTP(ctx context.Context, phone string) (*OTPResponse, error) {
	var resp OTPResponse
	if err := s.client.do(ctx, "POST", "/api/otp/request", map[string]string{
		"phone": phone,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyOTP exchanges the texted code for a citizen session. When a
// pending guest request exists it is submitted right away with the
// fresh session, then cleared; the draft survives a failed submit.
func (s *Session) VerifyOTP(ctx context.Context, phone, code string) (*schema.AidRequest, error) {
	var resp TokenResponse
	if err := s.client.do(ctx, "POST", "/api/otp/verify", map[string]string{
		"phone": phone,
		"code":  code,
	}, &resp); err != nil {
		return nil, err
	}
	if err := s.adoptToken(&resp); err != nil {
		return nil, err
	}

	form, ok := s.PendingRequest()
	if !ok {
		return nil, nil
	}

	request, err := s.client.Citizen().CreateRequest(ctx, *form)
	if err != nil {
		return nil, err
	}

	if err := s.ClearPendingRequest(); err != nil {
		return request, err
	}
	return request, nil
}
