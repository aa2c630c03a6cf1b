package client

import (
	"context"
	"strconv"

	"github.com/aidlink-inc/aidlink-api/lifecycle"
	"github.com/aidlink-inc/aidlink-api/schema"
)

// OrganizationAPI covers the pledge and fulfillment endpoints
type OrganizationAPI struct {
	c *Client
}

func (c *Client) Organization() *OrganizationAPI {
	return &OrganizationAPI{c: c}
}

// ListOpenRequests shows the pool of vetted requests waiting for a
// pledge. Identity fields are hidden until a pledge is approved.
func (a *OrganizationAPI) ListOpenRequests(ctx context.Context, filter RequestFilter) (*ProviderRequestList, error) {
	var resp ProviderRequestList
	if err := a.c.do(ctx, "GET", "/api/org/requests"+query(filter.values()), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProviderRequestList is one page of the sanitized provider view
type ProviderRequestList struct {
	Count   int                      `json:"count"`
	Results []schema.ProviderRequest `json:"results"`
}

// ProviderRequestDetail is the provider view of one request plus the
// organization's own pledge history. Contact details appear only on an
// approved assignment.
type ProviderRequestDetail struct {
	Result         *schema.ProviderRequest `json:"result"`
	Assignments    []schema.Assignment     `json:"assignments"`
	AllowedActions []lifecycle.Action      `json:"allowed_actions"`
}

// May reports whether the server allowed the given action
func (d *ProviderRequestDetail) May(action lifecycle.Action) bool {
	for _, a := range d.AllowedActions {
		if a == action {
			return true
		}
	}
	return false
}

func (a *OrganizationAPI) GetRequest(ctx context.Context, id string) (*ProviderRequestDetail, error) {
	var resp ProviderRequestDetail
	if err := a.c.do(ctx, "GET", "/api/org/requests/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Pledge offers fulfillment on an open request. The first pledge wins;
// a later one fails with a conflict.
func (a *OrganizationAPI) Pledge(ctx context.Context, requestID, notes string) (*schema.Assignment, error) {
	var resp assignmentEnvelope
	if err := a.c.do(ctx, "POST", "/api/org/requests/"+requestID+"/pledge", map[string]string{
		"notes": notes,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// AssignmentList is one page of the organization's own assignments
type AssignmentList struct {
	Count   int                 `json:"count"`
	Results []schema.Assignment `json:"results"`
}

func (a *OrganizationAPI) ListAssignments(ctx context.Context, status schema.AssignmentStatus, page, perPage int) (*AssignmentList, error) {
	values := map[string]string{
		"status": string(status),
	}
	if page > 0 {
		values["page"] = strconv.Itoa(page)
	}
	if perPage > 0 {
		values["per_page"] = strconv.Itoa(perPage)
	}

	var resp AssignmentList
	if err := a.c.do(ctx, "GET", "/api/org/assignments"+query(values), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *OrganizationAPI) CompleteAssignment(ctx context.Context, assignmentID, notes string) (*schema.Assignment, error) {
	var resp assignmentEnvelope
	if err := a.c.do(ctx, "POST", "/api/org/assignments/"+assignmentID+"/complete", map[string]string{
		"notes": notes,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// FailAssignment gives the request back with a mandatory reason
func (a *OrganizationAPI) FailAssignment(ctx context.Context, assignmentID, reason string) (*schema.Assignment, error) {
	var resp assignmentEnvelope
	if err := a.c.do(ctx, "POST", "/api/org/assignments/"+assignmentID+"/fail", map[string]string{
		"reason": reason,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *OrganizationAPI) Profile(ctx context.Context) (*schema.Organization, error) {
	var resp struct {
		Result *schema.Organization `json:"result"`
	}
	if err := a.c.do(ctx, "GET", "/api/org/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
