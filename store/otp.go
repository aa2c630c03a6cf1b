package store

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/aidlink-inc/aidlink-api/schema"
)

var (
	ErrOTPCooldown = fmt.Errorf("an OTP was sent recently, wait before requesting another")
	ErrOTPInvalid  = fmt.Errorf("the verification code is invalid or has expired")
)

const (
	otpTTL      = 5 * time.Minute
	otpCooldown = 60 * time.Second
)

func newOTPCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// IssueOTP creates a verification code for a phone number. A second
// code within the cooldown window is refused, clients drive their
// resend countdown off that.
func (s *AidStore) IssueOTP(phone string) (*schema.OTPSession, error) {
	var last schema.OTPSession
	err := s.ormDB.Where("phone = ?", phone).Order("created_at DESC").First(&last).Error
	if err == nil && time.Since(last.CreatedAt) < otpCooldown {
		return nil, ErrOTPCooldown
	}

	session := schema.OTPSession{
		Phone:     phone,
		Code:      newOTPCode(),
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.ormDB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// VerifyOTP consumes a matching unexpired code. Every session for the
// phone is deleted on success so a code never verifies twice.
func (s *AidStore) VerifyOTP(phone, code string) error {
	var session schema.OTPSession
	if err := s.ormDB.
		Where("phone = ? AND code = ? AND expires_at > ?", phone, code, time.Now()).
		First(&session).Error; err != nil {
		return ErrOTPInvalid
	}

	return s.ormDB.Where("phone = ?", phone).Delete(schema.OTPSession{}).Error
}

// ExpireOTPSessions sweeps out codes past their expiry
func (s *AidStore) ExpireOTPSessions() (int64, error) {
	result := s.ormDB.Where("expires_at <= ?", time.Now()).Delete(schema.OTPSession{})
	return result.RowsAffected, result.Error
}
