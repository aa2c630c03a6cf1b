package client

import (
	"context"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// PublicAPI needs no session
type PublicAPI struct {
	c *Client
}

func (c *Client) Public() *PublicAPI {
	return &PublicAPI{c: c}
}

// Track looks a request up by its anonymous tracking code
func (a *PublicAPI) Track(ctx context.Context, trackingCode string) (*schema.TrackedRequest, error) {
	var resp struct {
		Result *schema.TrackedRequest `json:"result"`
	}
	if err := a.c.do(ctx, "GET", "/api/public/track/"+trackingCode, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
