package schema

import (
	"time"

	"github.com/google/uuid"
)

// OTPSession is a transient phone verification code. Consumed on a
// successful verify, swept by the background expiry task otherwise.
type OTPSession struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Phone     string    `json:"phone" gorm:"index"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *OTPSession) Expired() bool {
	return time.Now().After(o.ExpiresAt)
}
