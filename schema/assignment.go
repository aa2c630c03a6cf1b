package schema

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is a pledge by an organization to fulfill an aid request.
// A request may accumulate many pledge attempts over its life but holds
// at most one active one at a time.
type Assignment struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID      uuid.UUID        `json:"request_id" gorm:"type:uuid;index"`
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;index"`
	Status         AssignmentStatus `json:"status" sql:"default:'pledged'"`
	Notes          string           `json:"notes"`

	// Contact details revealed to the organization on approval. Either
	// the requester's own name and phone or an inspector-supplied
	// substitute, decided at approval time.
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`

	CompletionNotes string `json:"completion_notes"`
	FailureReason   string `json:"failure_reason"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
