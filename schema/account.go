package schema

import (
	"time"

	"github.com/google/uuid"
)

// Citizen is a requester account, created on first OTP verification
type Citizen struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Phone    string    `json:"phone" gorm:"unique_index"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Address  string    `json:"address"`
	City     string    `json:"city"`
	Region   string    `json:"region"`

	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Principal is the authenticated identity attached to a session token.
// Account carries the role-specific record.
type Principal struct {
	ID      string      `json:"id"`
	Role    Role        `json:"role"`
	Account interface{} `json:"account,omitempty"`
}
