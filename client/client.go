// Package client is the Go SDK for the aidlink API. All endpoint
// groups share one request primitive that injects the bearer token and
// normalizes error bodies into APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const tokenStorageKey = "aidlink.token"

// APIError is the typed failure of every non-2xx response. Detail is
// a single display string whatever shape the server chose to return.
type APIError struct {
	StatusCode int
	Code       int64
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Detail)
}

type Client struct {
	endpoint string
	client   *http.Client
	storage  Storage
}

func New(endpoint string, storage Storage) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		storage: storage,
	}
}

// Token returns the persisted bearer token, empty when logged out
func (c *Client) Token() string {
	token, _ := c.storage.Get(tokenStorageKey)
	return token
}

func (c *Client) setToken(token string) error {
	return c.storage.Set(tokenStorageKey, token)
}

func (c *Client) clearToken() error {
	return c.storage.Delete(tokenStorageKey)
}

// do issues one API call. A nil result skips decoding; a 204 leaves
// result at its zero value.
func (c *Client) do(ctx context.Context, method, path string, params, result interface{}) error {
	var reqBody *bytes.Buffer
	if params != nil {
		encoded, err := json.Marshal(params)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, body)
	}

	if resp.StatusCode == http.StatusNoContent || result == nil || len(body) == 0 {
		return nil
	}

	return json.Unmarshal(body, result)
}

// parseAPIError normalizes the three detail shapes the server emits:
// a plain string, an array of {msg} validation objects, or an
// arbitrary object.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Detail:     http.StatusText(status),
	}

	var wire struct {
		Code   int64           `json:"code"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return apiErr
	}
	apiErr.Code = wire.Code

	if len(wire.Detail) == 0 {
		return apiErr
	}

	var detailString string
	if err := json.Unmarshal(wire.Detail, &detailString); err == nil {
		apiErr.Detail = detailString
		return apiErr
	}

	var detailList []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(wire.Detail, &detailList); err == nil {
		msgs := make([]string, 0, len(detailList))
		for _, d := range detailList {
			if d.Msg != "" {
				msgs = append(msgs, d.Msg)
			}
		}
		if len(msgs) > 0 {
			apiErr.Detail = strings.Join(msgs, "; ")
		}
		return apiErr
	}

	apiErr.Detail = string(wire.Detail)
	return apiErr
}

// query renders non-zero filter fields into a query string
func query(values map[string]string) string {
	q := url.Values{}
	for k, v := range values {
		if v != "" {
			q.Set(k, v)
		}
	}
	if encoded := q.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}
