package client

import (
	"strconv"

	"github.com/aidlink-inc/aidlink-api/lifecycle"
	"github.com/aidlink-inc/aidlink-api/schema"
)

// RequestForm is the payload of a new aid request
type RequestForm struct {
	RequesterName string           `json:"requester_name,omitempty"`
	Category      schema.Category  `json:"category"`
	Description   string           `json:"description,omitempty"`
	Quantity      int              `json:"quantity,omitempty"`
	FamilyMembers int              `json:"family_members,omitempty"`
	Address       string           `json:"address,omitempty"`
	City          string           `json:"city,omitempty"`
	Region        string           `json:"region,omitempty"`
	Coordinates   *schema.Location `json:"coordinates,omitempty"`
	IsUrgent      schema.Urgency   `json:"is_urgent,omitempty"`
}

// RequestFilter narrows paginated request listings
type RequestFilter struct {
	Status   schema.RequestStatus
	Category schema.Category
	Search   string
	Region   string
	Urgent   bool
	Flagged  bool
	Mine     bool
	Page     int
	PerPage  int
}

func (f RequestFilter) values() map[string]string {
	values := map[string]string{
		"status":   string(f.Status),
		"category": string(f.Category),
		"search":   f.Search,
		"region":   f.Region,
	}
	if f.Urgent {
		values["urgent"] = "true"
	}
	if f.Flagged {
		values["flagged"] = "true"
	}
	if f.Mine {
		values["mine"] = "true"
	}
	if f.Page > 0 {
		values["page"] = strconv.Itoa(f.Page)
	}
	if f.PerPage > 0 {
		values["per_page"] = strconv.Itoa(f.PerPage)
	}
	return values
}

// RequestList is one page of requests
type RequestList struct {
	Count   int                 `json:"count"`
	Results []schema.AidRequest `json:"results"`
}

// RequestDetail is the shared detail payload: the entity, its pledge
// history and the actions the server allows the viewer next. Pages
// enable buttons straight off AllowedActions.
type RequestDetail struct {
	Result         *schema.AidRequest  `json:"result"`
	Assignments    []schema.Assignment `json:"assignments"`
	AllowedActions []lifecycle.Action  `json:"allowed_actions"`
	IsOwner        bool                `json:"is_owner"`
}

// May reports whether the server allowed the given action
func (d *RequestDetail) May(action lifecycle.Action) bool {
	for _, a := range d.AllowedActions {
		if a == action {
			return true
		}
	}
	return false
}

type requestEnvelope struct {
	Result *schema.AidRequest `json:"result"`
}

type assignmentEnvelope struct {
	Result *schema.Assignment `json:"result"`
}
