package store

import (
	"fmt"
	"time"

	"github.com/aidlink-inc/aidlink-api/schema"
)

var (
	ErrAccountNotFound = fmt.Errorf("account not found")
	ErrAccountTaken    = fmt.Errorf("this account has been registered or has been taken")
)

// CreateAdmin registers an admin account and returns the generated
// password for its one-time display.
func (s *AidStore) CreateAdmin(fullName, email, phone string, role schema.Role) (*schema.Admin, string, error) {
	if role != schema.RoleAdmin && role != schema.RoleSuperadmin {
		role = schema.RoleAdmin
	}

	password := NewAccessCode()
	hash, err := hashSecret(password)
	if err != nil {
		return nil, "", err
	}

	admin := schema.Admin{
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: hash,
		Status:       schema.AccountActive,
	}
	if err := s.ormDB.Create(&admin).Error; err != nil {
		return nil, "", ErrAccountTaken
	}
	return &admin, password, nil
}

func (s *AidStore) GetAdmin(id string) (*schema.Admin, error) {
	var admin schema.Admin
	if err := s.ormDB.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AidStore) ListAdmins() ([]schema.Admin, error) {
	admins := []schema.Admin{}
	if err := s.ormDB.Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *AidStore) AdminLogin(email, password string) (*schema.Admin, error) {
	var admin schema.Admin
	if err := s.ormDB.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !compareSecret(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if admin.Status == schema.AccountSuspended {
		return nil, ErrAccountSuspended
	}

	now := time.Now()
	if err := s.ormDB.Model(&admin).Update("last_login", &now).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AidStore) SetAdminStatus(id string, status schema.AccountStatus) error {
	result := s.ormDB.Model(schema.Admin{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (s *AidStore) DeleteAdmin(id string) error {
	result := s.ormDB.Where("id = ?", id).Delete(schema.Admin{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
