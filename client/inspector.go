package client

import (
	"context"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// InspectorAPI covers the vetting and routing endpoints
type InspectorAPI struct {
	c *Client
}

func (c *Client) Inspector() *InspectorAPI {
	return &InspectorAPI{c: c}
}

func (a *InspectorAPI) ListRequests(ctx context.Context, filter RequestFilter) (*RequestList, error) {
	var resp RequestList
	if err := a.c.do(ctx, "GET", "/api/inspector/requests"+query(filter.values()), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *InspectorAPI) GetRequest(ctx context.Context, id string) (*RequestDetail, error) {
	var resp RequestDetail
	if err := a.c.do(ctx, "GET", "/api/inspector/requests/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ActivateRequest vets a pending request into the open pool and binds
// the caller as its supervisor
func (a *InspectorAPI) ActivateRequest(ctx context.Context, id string) (*schema.AidRequest, error) {
	var resp requestEnvelope
	if err := a.c.do(ctx, "POST", "/api/inspector/requests/"+id+"/activate", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *InspectorAPI) RejectRequest(ctx context.Context, id, reason string) (*schema.AidRequest, error) {
	var resp requestEnvelope
	if err := a.c.do(ctx, "POST", "/api/inspector/requests/"+id+"/reject", map[string]string{
		"reason": reason,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *InspectorAPI) FlagRequest(ctx context.Context, id, reason string) (*schema.AidRequest, error) {
	var resp requestEnvelope
	if err := a.c.do(ctx, "POST", "/api/inspector/requests/"+id+"/flag", map[string]string{
		"reason": reason,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// AssignRequest pledges an organization onto a request on the
// inspector's initiative
func (a *InspectorAPI) AssignRequest(ctx context.Context, id, organizationID, notes string) (*schema.Assignment, error) {
	var resp assignmentEnvelope
	if err := a.c.do(ctx, "POST", "/api/inspector/requests/"+id+"/assign", map[string]string{
		"organization_id": organizationID,
		"notes":           notes,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// RequestEdit carries the request fields an inspector may change
type RequestEdit struct {
	Status         *schema.RequestStatus `json:"status,omitempty"`
	InspectorNotes *string               `json:"inspector_notes,omitempty"`
}

func (a *InspectorAPI) UpdateRequest(ctx context.Context, id string, edit RequestEdit) (*schema.AidRequest, error) {
	var resp requestEnvelope
	if err := a.c.do(ctx, "PATCH", "/api/inspector/requests/"+id, edit, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *InspectorAPI) DeleteRequest(ctx context.Context, id string) error {
	return a.c.do(ctx, "DELETE", "/api/inspector/requests/"+id, nil, nil)
}

// NearbyOrganizations lists providers covering the request's
// surroundings, nearest first
func (a *InspectorAPI) NearbyOrganizations(ctx context.Context, id string) ([]schema.Organization, error) {
	var resp struct {
		Count   int                   `json:"count"`
		Results []schema.Organization `json:"results"`
	}
	if err := a.c.do(ctx, "GET", "/api/inspector/requests/"+id+"/nearby-orgs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// ApprovalForm decides what contact the organization sees once the
// pledge is approved
type ApprovalForm struct {
	ShowCitizenPhone bool   `json:"show_citizen_phone"`
	ContactName      string `json:"contact_name,omitempty"`
	ContactPhone     string `json:"contact_phone,omitempty"`
}

func (a *InspectorAPI) ApproveAssignment(ctx context.Context, assignmentID string, form ApprovalForm) (*schema.Assignment, error) {
	var resp assignmentEnvelope
	if err := a.c.do(ctx, "POST", "/api/inspector/assignments/"+assignmentID+"/approve", form, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *InspectorAPI) CancelAssignment(ctx context.Context, assignmentID string) (*schema.Assignment, error) {
	var resp assignmentEnvelope
	if err := a.c.do(ctx, "POST", "/api/inspector/assignments/"+assignmentID+"/cancel", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
