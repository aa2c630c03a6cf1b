package schema

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// Urgency is a bool that also accepts the 0/1 integer form some
// clients send. It always marshals back as a plain bool.
type Urgency bool

func (u *Urgency) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1", `"1"`:
		*u = true
	case "false", "0", `"0"`, "null":
		*u = false
	default:
		return errors.New("urgency must be a bool or a 0/1 integer")
	}
	return nil
}

// AidRequest is a citizen's aid need record
type AidRequest struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequesterID   string        `json:"requester_id" gorm:"index"`
	RequesterName string        `json:"requester_name"`
	Phone         string        `json:"phone"`
	Category      Category      `json:"category"`
	Description   string        `json:"description"`
	Quantity      int           `json:"quantity"`
	FamilyMembers int           `json:"family_members"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Region        string        `json:"region"`
	Coordinates   *Location     `json:"coordinates" gorm:"type:jsonb"`
	Status        RequestStatus `json:"status" sql:"default:'pending'"`
	IsUrgent      Urgency       `json:"is_urgent"`
	PriorityScore int           `json:"priority_score"`
	TrackingCode  string        `json:"tracking_code" gorm:"unique_index"`

	IsFlagged  bool       `json:"is_flagged"`
	FlagReason string     `json:"flag_reason"`
	FlaggedBy  string     `json:"flagged_by"`
	FlaggedAt  *time.Time `json:"flagged_at"`

	InspectorID    string `json:"inspector_id" gorm:"index"`
	AdminNotes     string `json:"admin_notes"`
	InspectorNotes string `json:"inspector_notes"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TrackedRequest is the sanitized view exposed through the anonymous
// tracking-code lookup. No requester identity, no inspector notes.
type TrackedRequest struct {
	TrackingCode string        `json:"tracking_code"`
	Category     Category      `json:"category"`
	Status       RequestStatus `json:"status"`
	IsUrgent     Urgency       `json:"is_urgent"`
	City         string        `json:"city"`
	Region       string        `json:"region"`
	CreatedAt    time.Time     `json:"created_at"`
	CompletedAt  *time.Time    `json:"completed_at"`
}

// Tracked strips an AidRequest down to its anonymous view
func (r *AidRequest) Tracked() *TrackedRequest {
	return &TrackedRequest{
		TrackingCode: r.TrackingCode,
		Category:     r.Category,
		Status:       r.Status,
		IsUrgent:     r.IsUrgent,
		City:         r.City,
		Region:       r.Region,
		CreatedAt:    r.CreatedAt,
		CompletedAt:  r.CompletedAt,
	}
}

// ProviderRequest is the view served to organizations: enough to
// decide and carry out a pledge, never the requester's identity.
// Contact details only reach an organization through the approval
// snapshot on its assignment.
type ProviderRequest struct {
	ID            uuid.UUID     `json:"id"`
	TrackingCode  string        `json:"tracking_code"`
	Category      Category      `json:"category"`
	Description   string        `json:"description"`
	Quantity      int           `json:"quantity"`
	FamilyMembers int           `json:"family_members"`
	City          string        `json:"city"`
	Region        string        `json:"region"`
	Coordinates   *Location     `json:"coordinates"`
	Status        RequestStatus `json:"status"`
	IsUrgent      Urgency       `json:"is_urgent"`
	PriorityScore int           `json:"priority_score"`
	CreatedAt     time.Time     `json:"created_at"`
	CompletedAt   *time.Time    `json:"completed_at"`
}

// ForProvider strips an AidRequest down to the organization view
func (r *AidRequest) ForProvider() *ProviderRequest {
	return &ProviderRequest{
		ID:            r.ID,
		TrackingCode:  r.TrackingCode,
		Category:      r.Category,
		Description:   r.Description,
		Quantity:      r.Quantity,
		FamilyMembers: r.FamilyMembers,
		City:          r.City,
		Region:        r.Region,
		Coordinates:   r.Coordinates,
		Status:        r.Status,
		IsUrgent:      r.IsUrgent,
		PriorityScore: r.PriorityScore,
		CreatedAt:     r.CreatedAt,
		CompletedAt:   r.CompletedAt,
	}
}
