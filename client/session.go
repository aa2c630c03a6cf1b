package client

import (
	"context"
	"net/http"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// TokenResponse is what every login variant returns
type TokenResponse struct {
	JWTToken string           `json:"jwt_token"`
	ExpireIn int64            `json:"expire_in"`
	User     schema.Principal `json:"user"`
}

// Session holds the current user. It is written only by Init, the
// login variants and Logout; everything else reads.
type Session struct {
	client *Client
	user   *schema.Principal
}

func NewSession(client *Client) *Session {
	return &Session{
		client: client,
	}
}

// Init probes the persisted token once at startup. An expired or
// invalid token clears silently and leaves the session logged out.
func (s *Session) Init(ctx context.Context) error {
	if s.client.Token() == "" {
		return nil
	}

	var resp struct {
		User schema.Principal `json:"user"`
	}
	if err := s.client.do(ctx, "GET", "/api/auth/me", nil, &resp); err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusUnauthorized {
			_ = s.client.clearToken()
			return nil
		}
		return err
	}

	s.user = &resp.User
	return nil
}

// Authenticated is true iff a user is present
func (s *Session) Authenticated() bool {
	return s.user != nil
}

func (s *Session) User() *schema.Principal {
	return s.user
}

func (s *Session) adoptToken(resp *TokenResponse) error {
	if err := s.client.setToken(resp.JWTToken); err != nil {
		return err
	}
	s.user = &resp.User
	return nil
}

// LoginAdmin exchanges email and password for a session
func (s *Session) LoginAdmin(ctx context.Context, email, password string) error {
	var resp TokenResponse
	if err := s.client.do(ctx, "POST", "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp); err != nil {
		return err
	}
	return s.adoptToken(&resp)
}

// LoginInspector exchanges phone and access code for a session
func (s *Session) LoginInspector(ctx context.Context, phone, accessCode string) error {
	var resp TokenResponse
	if err := s.client.do(ctx, "POST", "/api/auth/inspector", map[string]string{
		"phone":       phone,
		"access_code": accessCode,
	}, &resp); err != nil {
		return err
	}
	return s.adoptToken(&resp)
}

// LoginOrganization exchanges phone and access code for a session
func (s *Session) LoginOrganization(ctx context.Context, phone, accessCode string) error {
	var resp TokenResponse
	if err := s.client.do(ctx, "POST", "/api/auth/org", map[string]string{
		"phone":       phone,
		"access_code": accessCode,
	}, &resp); err != nil {
		return err
	}
	return s.adoptToken(&resp)
}

// Logout drops the token and the user. Navigation afterwards is the
// caller's business.
func (s *Session) Logout() error {
	s.user = nil
	return s.client.clearToken()
}
