package client

import (
	"context"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// CitizenAPI covers the endpoints a logged-in citizen may call
type CitizenAPI struct {
	c *Client
}

func (c *Client) Citizen() *CitizenAPI {
	return &CitizenAPI{c: c}
}

func (a *CitizenAPI) CreateRequest(ctx context.Context, form RequestForm) (*schema.AidRequest, error) {
	var resp requestEnvelope
	if err := a.c.do(ctx, "POST", "/api/citizen/requests", form, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *CitizenAPI) ListRequests(ctx context.Context, filter RequestFilter) (*RequestList, error) {
	var resp RequestList
	if err := a.c.do(ctx, "GET", "/api/citizen/requests"+query(filter.values()), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *CitizenAPI) GetRequest(ctx context.Context, id string) (*RequestDetail, error) {
	var resp RequestDetail
	if err := a.c.do(ctx, "GET", "/api/citizen/requests/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *CitizenAPI) CancelRequest(ctx context.Context, id string) (*schema.AidRequest, error) {
	var resp requestEnvelope
	if err := a.c.do(ctx, "POST", "/api/citizen/requests/"+id+"/cancel", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *CitizenAPI) Profile(ctx context.Context) (*schema.Citizen, error) {
	var resp struct {
		Result *schema.Citizen `json:"result"`
	}
	if err := a.c.do(ctx, "GET", "/api/citizen/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// ProfileUpdate carries the fields a citizen may edit on their own
// account. Nil fields stay untouched.
type ProfileUpdate struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Region   *string `json:"region,omitempty"`
}

func (a *CitizenAPI) UpdateProfile(ctx context.Context, update ProfileUpdate) (*schema.Citizen, error) {
	var resp struct {
		Result *schema.Citizen `json:"result"`
	}
	if err := a.c.do(ctx, "PATCH", "/api/citizen/me", update, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
