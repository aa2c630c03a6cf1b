package lifecycle

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aidlink-inc/aidlink-api/schema"
)

func newRequest(status schema.RequestStatus) *schema.AidRequest {
	return &schema.AidRequest{
		ID:            uuid.New(),
		RequesterID:   "citizen-1",
		RequesterName: "Amina",
		Phone:         "0612345678",
		Category:      schema.CategoryFood,
		Status:        status,
	}
}

func TestRequestTransitions(t *testing.T) {
	cases := []struct {
		action Action
		from   schema.RequestStatus
		to     schema.RequestStatus
		ok     bool
	}{
		{ActionActivate, schema.RequestPending, schema.RequestNew, true},
		{ActionReject, schema.RequestPending, schema.RequestRejected, true},
		{ActionCancel, schema.RequestNew, schema.RequestCancelled, true},
		{ActionAssign, schema.RequestNew, schema.RequestAssigned, true},
		{ActionPledge, schema.RequestNew, schema.RequestAssigned, true},
		{ActionApprove, schema.RequestAssigned, schema.RequestInProgress, true},
		{ActionApprove, schema.RequestInProgress, schema.RequestInProgress, true},
		{ActionCompleteAssignment, schema.RequestInProgress, schema.RequestCompleted, true},
		{ActionFailAssignment, schema.RequestInProgress, schema.RequestNew, true},
		{ActionCancelAssignment, schema.RequestAssigned, schema.RequestNew, true},
		{ActionCancelAssignment, schema.RequestInProgress, schema.RequestNew, true},

		{ActionActivate, schema.RequestNew, schema.RequestNew, false},
		{ActionCancel, schema.RequestInProgress, schema.RequestInProgress, false},
		{ActionCancel, schema.RequestCompleted, schema.RequestCompleted, false},
		{ActionAssign, schema.RequestPending, schema.RequestPending, false},
		{ActionApprove, schema.RequestNew, schema.RequestNew, false},
		{ActionCompleteAssignment, schema.RequestAssigned, schema.RequestAssigned, false},
	}

	for _, c := range cases {
		next, err := NextStatus(c.action, c.from)
		if c.ok {
			assert.NoError(t, err, "%s from %s", c.action, c.from)
			assert.Equal(t, c.to, next, "%s from %s", c.action, c.from)
		} else {
			assert.Equal(t, ErrIllegalTransition, err, "%s from %s", c.action, c.from)
			assert.Equal(t, c.from, next, "failed transition must not move")
		}
	}
}

func TestAssignmentTransitions(t *testing.T) {
	next, err := NextAssignmentStatus(ActionApprove, schema.AssignmentPledged)
	assert.NoError(t, err)
	assert.Equal(t, schema.AssignmentInProgress, next)

	next, err = NextAssignmentStatus(ActionCompleteAssignment, schema.AssignmentInProgress)
	assert.NoError(t, err)
	assert.Equal(t, schema.AssignmentCompleted, next)

	next, err = NextAssignmentStatus(ActionFailAssignment, schema.AssignmentInProgress)
	assert.NoError(t, err)
	assert.Equal(t, schema.AssignmentFailed, next)

	// failed assignments are terminal, not even cancellable
	_, err = NextAssignmentStatus(ActionCancelAssignment, schema.AssignmentFailed)
	assert.Equal(t, ErrIllegalTransition, err)

	_, err = NextAssignmentStatus(ActionApprove, schema.AssignmentInProgress)
	assert.Equal(t, ErrIllegalTransition, err)
}

func TestCitizenCancelOwnNewOnly(t *testing.T) {
	owner := Viewer{ID: "citizen-1", Role: schema.RoleCitizen}
	stranger := Viewer{ID: "citizen-2", Role: schema.RoleCitizen}

	req := newRequest(schema.RequestNew)
	assert.True(t, AllowedActions(owner, req, nil).Has(ActionCancel))
	assert.False(t, AllowedActions(stranger, req, nil).Has(ActionCancel))
	assert.False(t, AllowedActions(stranger, req, nil).Has(ActionView))

	for _, status := range []schema.RequestStatus{
		schema.RequestPending, schema.RequestAssigned, schema.RequestInProgress,
		schema.RequestCompleted, schema.RequestCancelled, schema.RequestRejected,
	} {
		req := newRequest(status)
		assert.False(t, AllowedActions(owner, req, nil).Has(ActionCancel),
			"cancel must be refused in %s", status)
	}
}

func TestInspectorWorklistActions(t *testing.T) {
	inspector := Viewer{ID: "inspector-1", Role: schema.RoleInspector}

	pending := newRequest(schema.RequestPending)
	actions := AllowedActions(inspector, pending, nil)
	assert.True(t, actions.Has(ActionActivate))
	assert.True(t, actions.Has(ActionReject))
	assert.True(t, actions.Has(ActionFlag))
	assert.True(t, actions.Has(ActionDelete))
	assert.False(t, actions.Has(ActionAssign))

	fresh := newRequest(schema.RequestNew)
	actions = AllowedActions(inspector, fresh, nil)
	assert.True(t, actions.Has(ActionAssign))
	assert.False(t, actions.Has(ActionActivate))

	// flagging stays available on terminal statuses
	done := newRequest(schema.RequestCompleted)
	actions = AllowedActions(inspector, done, nil)
	assert.True(t, actions.Has(ActionFlag))
	assert.False(t, actions.Has(ActionEditStatus))
	assert.False(t, actions.Has(ActionDelete))
}

func TestInspectorApproveAndCancelPledge(t *testing.T) {
	inspector := Viewer{ID: "inspector-1", Role: schema.RoleInspector}
	req := newRequest(schema.RequestAssigned)

	pledged := []schema.Assignment{{
		ID:             uuid.New(),
		RequestID:      req.ID,
		OrganizationID: uuid.New(),
		Status:         schema.AssignmentPledged,
	}}

	actions := AllowedActions(inspector, req, pledged)
	assert.True(t, actions.Has(ActionApprove))
	assert.True(t, actions.Has(ActionCancelAssignment))

	pledged[0].Status = schema.AssignmentInProgress
	req.Status = schema.RequestInProgress
	actions = AllowedActions(inspector, req, pledged)
	assert.False(t, actions.Has(ActionApprove), "already approved")
	assert.True(t, actions.Has(ActionCancelAssignment))

	pledged[0].Status = schema.AssignmentFailed
	req.Status = schema.RequestNew
	actions = AllowedActions(inspector, req, pledged)
	assert.False(t, actions.Has(ActionCancelAssignment), "failed is terminal")
}

func TestOrganizationActions(t *testing.T) {
	orgID := uuid.New()
	org := Viewer{ID: orgID.String(), Role: schema.RoleOrganization}

	req := newRequest(schema.RequestNew)
	assert.True(t, AllowedActions(org, req, nil).Has(ActionPledge))

	// an active pledge blocks a second one
	active := []schema.Assignment{{
		ID: uuid.New(), RequestID: req.ID,
		OrganizationID: uuid.New(), Status: schema.AssignmentPledged,
	}}
	req.Status = schema.RequestAssigned
	assert.False(t, AllowedActions(org, req, active).Has(ActionPledge))

	// a failed pledge on a request back in new does not: this is the
	// supported retry path
	failed := []schema.Assignment{{
		ID: uuid.New(), RequestID: req.ID,
		OrganizationID: orgID, Status: schema.AssignmentFailed,
	}}
	req.Status = schema.RequestNew
	assert.True(t, AllowedActions(org, req, failed).Has(ActionPledge))

	// only the owning organization updates an in-progress assignment
	req.Status = schema.RequestInProgress
	mine := []schema.Assignment{{
		ID: uuid.New(), RequestID: req.ID,
		OrganizationID: orgID, Status: schema.AssignmentInProgress,
	}}
	actions := AllowedActions(org, req, mine)
	assert.True(t, actions.Has(ActionCompleteAssignment))
	assert.True(t, actions.Has(ActionFailAssignment))

	other := Viewer{ID: uuid.New().String(), Role: schema.RoleOrganization}
	actions = AllowedActions(other, req, mine)
	assert.False(t, actions.Has(ActionCompleteAssignment))
	assert.False(t, actions.Has(ActionFailAssignment))
}

func TestAdminActions(t *testing.T) {
	admin := Viewer{ID: "admin-1", Role: schema.RoleAdmin}

	req := newRequest(schema.RequestInProgress)
	actions := AllowedActions(admin, req, nil)
	assert.True(t, actions.Has(ActionOverride))
	assert.True(t, actions.Has(ActionDelete))
	assert.True(t, actions.Has(ActionEditStatus))
}

func TestActiveAssignmentSingle(t *testing.T) {
	reqID := uuid.New()
	assignments := []schema.Assignment{
		{ID: uuid.New(), RequestID: reqID, Status: schema.AssignmentFailed},
		{ID: uuid.New(), RequestID: reqID, Status: schema.AssignmentCancelled},
		{ID: uuid.New(), RequestID: reqID, Status: schema.AssignmentPledged},
	}
	active := ActiveAssignment(assignments)
	assert.NotNil(t, active)
	assert.Equal(t, schema.AssignmentPledged, active.Status)

	assert.Nil(t, ActiveAssignment(assignments[:2]))
}

func TestDisclosedContact(t *testing.T) {
	req := newRequest(schema.RequestAssigned)

	name, phone := DisclosedContact(req, true, "", "")
	assert.Equal(t, "Amina", name)
	assert.Equal(t, "0612345678", phone)

	name, phone = DisclosedContact(req, false, "Relay desk", "0600000000")
	assert.Equal(t, "Relay desk", name)
	assert.Equal(t, "0600000000", phone)
}

// Walks the whole happy path of the example scenario: activation binds
// the inspector, approval moves both records together, completion ends
// the request.
func TestFullLifecycleWalk(t *testing.T) {
	req := newRequest(schema.RequestPending)

	status, err := NextStatus(ActionActivate, req.Status)
	assert.NoError(t, err)
	req.Status = status
	req.InspectorID = "inspector-1"

	status, err = NextStatus(ActionPledge, req.Status)
	assert.NoError(t, err)
	req.Status = status

	aStatus, err := NextAssignmentStatus(ActionApprove, schema.AssignmentPledged)
	assert.NoError(t, err)
	status, err = NextStatus(ActionApprove, req.Status)
	assert.NoError(t, err)
	req.Status = status
	assert.Equal(t, schema.AssignmentInProgress, aStatus)
	assert.Equal(t, schema.RequestInProgress, req.Status)

	aStatus, err = NextAssignmentStatus(ActionCompleteAssignment, aStatus)
	assert.NoError(t, err)
	status, err = NextStatus(ActionCompleteAssignment, req.Status)
	assert.NoError(t, err)
	assert.Equal(t, schema.AssignmentCompleted, aStatus)
	assert.Equal(t, schema.RequestCompleted, status)
}
