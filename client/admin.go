package client

import (
	"context"

	"github.com/aidlink-inc/aidlink-api/schema"
	"github.com/aidlink-inc/aidlink-api/store"
)

// AdminAPI covers supervision and account management
type AdminAPI struct {
	c *Client
}

func (c *Client) Admin() *AdminAPI {
	return &AdminAPI{c: c}
}

func (a *AdminAPI) ListRequests(ctx context.Context, filter RequestFilter) (*RequestList, error) {
	var resp RequestList
	if err := a.c.do(ctx, "GET", "/api/admin/requests"+query(filter.values()), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RequestOverride carries the supervision fields only admins may force
type RequestOverride struct {
	Status        *schema.RequestStatus `json:"status,omitempty"`
	PriorityScore *int                  `json:"priority_score,omitempty"`
	IsUrgent      *bool                 `json:"is_urgent,omitempty"`
	AdminNotes    *string               `json:"admin_notes,omitempty"`
}

func (a *AdminAPI) UpdateRequest(ctx context.Context, id string, override RequestOverride) (*schema.AidRequest, error) {
	var resp requestEnvelope
	if err := a.c.do(ctx, "PATCH", "/api/admin/requests/"+id, override, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (a *AdminAPI) DeleteRequest(ctx context.Context, id string) error {
	return a.c.do(ctx, "DELETE", "/api/admin/requests/"+id, nil, nil)
}

func (a *AdminAPI) CancelAssignment(ctx context.Context, assignmentID string) (*schema.Assignment, error) {
	var resp assignmentEnvelope
	if err := a.c.do(ctx, "POST", "/api/admin/assignments/"+assignmentID+"/cancel", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// CreatedAccount pairs the fresh record with its one-time secret. The
// secret never appears again; show it now or lose it.
type CreatedAccount struct {
	Result     interface{} `json:"result"`
	Password   string      `json:"password"`
	AccessCode string      `json:"access_code"`
}

func (a *AdminAPI) CreateAdmin(ctx context.Context, fullName, email, phone string, role schema.Role) (*CreatedAccount, error) {
	var resp CreatedAccount
	if err := a.c.do(ctx, "POST", "/api/admin/admins", map[string]interface{}{
		"full_name": fullName,
		"email":     email,
		"phone":     phone,
		"role":      role,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) ListAdmins(ctx context.Context) ([]schema.Admin, error) {
	var resp struct {
		Results []schema.Admin `json:"results"`
	}
	if err := a.c.do(ctx, "GET", "/api/admin/admins", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (a *AdminAPI) CreateInspector(ctx context.Context, fullName, phone string) (*CreatedAccount, error) {
	var resp CreatedAccount
	if err := a.c.do(ctx, "POST", "/api/admin/inspectors", map[string]string{
		"full_name": fullName,
		"phone":     phone,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) ListInspectors(ctx context.Context) ([]schema.Inspector, error) {
	var resp struct {
		Results []schema.Inspector `json:"results"`
	}
	if err := a.c.do(ctx, "GET", "/api/admin/inspectors", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (a *AdminAPI) CreateOrganization(ctx context.Context, params store.OrganizationParams) (*CreatedAccount, error) {
	var resp CreatedAccount
	if err := a.c.do(ctx, "POST", "/api/admin/organizations", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AdminAPI) ListOrganizations(ctx context.Context) ([]schema.Organization, error) {
	var resp struct {
		Results []schema.Organization `json:"results"`
	}
	if err := a.c.do(ctx, "GET", "/api/admin/organizations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// accountKind is the path segment of an account collection
type accountKind string

const (
	Admins        accountKind = "admins"
	Inspectors    accountKind = "inspectors"
	Organizations accountKind = "organizations"
)

func (a *AdminAPI) SuspendAccount(ctx context.Context, kind accountKind, id string) error {
	return a.c.do(ctx, "POST", "/api/admin/"+string(kind)+"/"+id+"/suspend", nil, nil)
}

func (a *AdminAPI) ActivateAccount(ctx context.Context, kind accountKind, id string) error {
	return a.c.do(ctx, "POST", "/api/admin/"+string(kind)+"/"+id+"/activate", nil, nil)
}

func (a *AdminAPI) DeleteAccount(ctx context.Context, kind accountKind, id string) error {
	return a.c.do(ctx, "DELETE", "/api/admin/"+string(kind)+"/"+id, nil, nil)
}

// RegenerateAccessCode replaces the account's access code with a fresh
// random one and returns it, once
func (a *AdminAPI) RegenerateAccessCode(ctx context.Context, kind accountKind, id string) (string, error) {
	var resp struct {
		AccessCode string `json:"access_code"`
	}
	if err := a.c.do(ctx, "POST", "/api/admin/"+string(kind)+"/"+id+"/access-code", nil, &resp); err != nil {
		return "", err
	}
	return resp.AccessCode, nil
}

// SetAccessCode installs a custom access code. The format rule (6-20
// characters, no whitespace) is checked here before any network call,
// and again server side.
func (a *AdminAPI) SetAccessCode(ctx context.Context, kind accountKind, id, code string) error {
	if err := store.ValidateAccessCode(code); err != nil {
		return err
	}

	return a.c.do(ctx, "PUT", "/api/admin/"+string(kind)+"/"+id+"/access-code", map[string]string{
		"access_code": code,
	}, nil)
}
