package schema

import (
	"time"

	"github.com/google/uuid"
)

// Inspector vets incoming requests and approves pledges
type Inspector struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone" gorm:"unique_index"`

	AccessCodeHash string `json:"-"`

	Status    AccountStatus `json:"status" sql:"default:'active'"`
	LastLogin *time.Time    `json:"last_login"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
