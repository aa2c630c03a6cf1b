package schema

import (
	"time"

	"github.com/google/uuid"
)

// Admin supervises the whole pipeline
type Admin struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email" gorm:"unique_index"`
	Phone    string    `json:"phone"`
	Role     Role      `json:"role" sql:"default:'admin'"`

	PasswordHash string `json:"-"`

	Status    AccountStatus `json:"status" sql:"default:'active'"`
	LastLogin *time.Time    `json:"last_login"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
