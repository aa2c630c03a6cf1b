// Package lifecycle holds the request/assignment state machine and the
// role permission matrix as pure functions. Handlers and stores both
// consult it so the rules live in exactly one place.
package lifecycle

import (
	"fmt"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// Action is something a viewer may do to a request or one of its
// assignments.
type Action string

const (
	ActionView   Action = "view"
	ActionCancel Action = "cancel"

	ActionActivate   Action = "activate"
	ActionReject     Action = "reject"
	ActionAssign     Action = "assign"
	ActionApprove    Action = "approve_pledge"
	ActionFlag       Action = "flag"
	ActionEditStatus Action = "edit_status"
	ActionEditNotes  Action = "edit_notes"
	ActionDelete     Action = "delete"

	ActionPledge             Action = "pledge"
	ActionCompleteAssignment Action = "complete_assignment"
	ActionFailAssignment     Action = "fail_assignment"
	ActionCancelAssignment   Action = "cancel_assignment"

	ActionOverride Action = "override"
)

type ActionSet map[Action]bool

func (s ActionSet) Has(a Action) bool {
	return s[a]
}

// Viewer is the principal the action set is computed for
type Viewer struct {
	ID   string
	Role schema.Role
}

var (
	ErrIllegalTransition = fmt.Errorf("illegal status transition")
)

// requestTransitions maps an action to its source statuses and the
// status it yields. Anything absent is illegal.
var requestTransitions = map[Action]map[schema.RequestStatus]schema.RequestStatus{
	ActionActivate: {schema.RequestPending: schema.RequestNew},
	ActionReject:   {schema.RequestPending: schema.RequestRejected},
	ActionCancel:   {schema.RequestNew: schema.RequestCancelled},
	ActionAssign:   {schema.RequestNew: schema.RequestAssigned},
	ActionPledge:   {schema.RequestNew: schema.RequestAssigned},
	ActionApprove: {
		schema.RequestAssigned:   schema.RequestInProgress,
		schema.RequestInProgress: schema.RequestInProgress,
	},
	ActionCompleteAssignment: {schema.RequestInProgress: schema.RequestCompleted},
	ActionFailAssignment:     {schema.RequestInProgress: schema.RequestNew},
	ActionCancelAssignment: {
		schema.RequestAssigned:   schema.RequestNew,
		schema.RequestInProgress: schema.RequestNew,
	},
}

var assignmentTransitions = map[Action]map[schema.AssignmentStatus]schema.AssignmentStatus{
	ActionApprove:            {schema.AssignmentPledged: schema.AssignmentInProgress},
	ActionCompleteAssignment: {schema.AssignmentInProgress: schema.AssignmentCompleted},
	ActionFailAssignment:     {schema.AssignmentInProgress: schema.AssignmentFailed},
	ActionCancelAssignment: {
		schema.AssignmentPledged:    schema.AssignmentCancelled,
		schema.AssignmentInProgress: schema.AssignmentCancelled,
	},
}

// NextStatus resolves the request status an action yields from the
// current one.
func NextStatus(action Action, current schema.RequestStatus) (schema.RequestStatus, error) {
	if next, ok := requestTransitions[action][current]; ok {
		return next, nil
	}
	return current, ErrIllegalTransition
}

// NextAssignmentStatus resolves the assignment status an action yields.
// Failed assignments are terminal: they are neither cancellable nor
// retryable, the retry path is a brand-new pledge.
func NextAssignmentStatus(action Action, current schema.AssignmentStatus) (schema.AssignmentStatus, error) {
	if next, ok := assignmentTransitions[action][current]; ok {
		return next, nil
	}
	return current, ErrIllegalTransition
}

// ActiveAssignment returns the single pledged or in-progress assignment
// driving the request, if any.
func ActiveAssignment(assignments []schema.Assignment) *schema.Assignment {
	for i := range assignments {
		if assignments[i].Status.Active() {
			return &assignments[i]
		}
	}
	return nil
}

// IsOwner reports whether the viewer owns the entity: for citizens the
// request they created, for inspectors the request they activated.
func IsOwner(viewer Viewer, request *schema.AidRequest) bool {
	switch viewer.Role {
	case schema.RoleCitizen:
		return request.RequesterID != "" && request.RequesterID == viewer.ID
	case schema.RoleInspector:
		return request.InspectorID != "" && request.InspectorID == viewer.ID
	}
	return false
}

// inspectorDeletable lists the statuses an inspector may delete in.
// Admins delete anything.
var inspectorDeletable = map[schema.RequestStatus]bool{
	schema.RequestPending:   true,
	schema.RequestNew:       true,
	schema.RequestRejected:  true,
	schema.RequestCancelled: true,
}

// AllowedActions computes every action the viewer may take on the
// request and its assignments right now. Pure: reads nothing but its
// arguments.
func AllowedActions(viewer Viewer, request *schema.AidRequest, assignments []schema.Assignment) ActionSet {
	actions := ActionSet{}
	active := ActiveAssignment(assignments)

	switch viewer.Role {
	case schema.RoleCitizen:
		if !IsOwner(viewer, request) {
			return actions
		}
		actions[ActionView] = true
		if request.Status == schema.RequestNew {
			actions[ActionCancel] = true
		}

	case schema.RoleInspector:
		actions[ActionView] = true
		actions[ActionFlag] = true
		switch request.Status {
		case schema.RequestPending:
			actions[ActionActivate] = true
			actions[ActionReject] = true
		case schema.RequestNew:
			actions[ActionAssign] = true
		}
		if active != nil {
			if active.Status == schema.AssignmentPledged {
				actions[ActionApprove] = true
			}
			actions[ActionCancelAssignment] = true
		}
		if !request.Status.Terminal() {
			actions[ActionEditStatus] = true
			actions[ActionEditNotes] = true
		}
		if inspectorDeletable[request.Status] {
			actions[ActionDelete] = true
		}

	case schema.RoleOrganization:
		actions[ActionView] = true
		if request.Status == schema.RequestNew && active == nil {
			actions[ActionPledge] = true
		}
		if active != nil && active.Status == schema.AssignmentInProgress &&
			active.OrganizationID.String() == viewer.ID {
			actions[ActionCompleteAssignment] = true
			actions[ActionFailAssignment] = true
		}

	case schema.RoleAdmin, schema.RoleSuperadmin:
		actions[ActionView] = true
		actions[ActionOverride] = true
		actions[ActionEditStatus] = true
		actions[ActionEditNotes] = true
		actions[ActionDelete] = true
		actions[ActionFlag] = true
		if active != nil && active.Status != schema.AssignmentFailed {
			actions[ActionCancelAssignment] = true
		}
	}

	return actions
}

// DisclosedContact decides the contact an organization sees once its
// pledge is approved: the requester's real identity when the inspector
// opted to show it, otherwise the substitute the inspector supplied.
func DisclosedContact(request *schema.AidRequest, showCitizenPhone bool, altName, altPhone string) (name, phone string) {
	if showCitizenPhone {
		return request.RequesterName, request.Phone
	}
	return altName, altPhone
}
