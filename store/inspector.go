package store

import (
	"time"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// CreateInspector registers an inspector and returns the generated
// access code alongside the record. The code is never readable again.
func (s *AidStore) CreateInspector(fullName, phone string) (*schema.Inspector, string, error) {
	code := NewAccessCode()
	hash, err := hashSecret(code)
	if err != nil {
		return nil, "", err
	}

	inspector := schema.Inspector{
		FullName:       fullName,
		Phone:          phone,
		AccessCodeHash: hash,
		Status:         schema.AccountActive,
	}
	if err := s.ormDB.Create(&inspector).Error; err != nil {
		return nil, "", err
	}
	return &inspector, code, nil
}

func (s *AidStore) GetInspector(id string) (*schema.Inspector, error) {
	var inspector schema.Inspector
	if err := s.ormDB.Where("id = ?", id).First(&inspector).Error; err != nil {
		return nil, err
	}
	return &inspector, nil
}

func (s *AidStore) ListInspectors() ([]schema.Inspector, error) {
	inspectors := []schema.Inspector{}
	if err := s.ormDB.Order("created_at DESC").Find(&inspectors).Error; err != nil {
		return nil, err
	}
	return inspectors, nil
}

// InspectorLogin exchanges phone plus access code for the inspector
// record. Wrong phone and wrong code are indistinguishable on purpose.
func (s *AidStore) InspectorLogin(phone, accessCode string) (*schema.Inspector, error) {
	var inspector schema.Inspector
	if err := s.ormDB.Where("phone = ?", phone).First(&inspector).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !compareSecret(inspector.AccessCodeHash, accessCode) {
		return nil, ErrInvalidCredentials
	}
	if inspector.Status == schema.AccountSuspended {
		return nil, ErrAccountSuspended
	}

	now := time.Now()
	if err := s.ormDB.Model(&inspector).Update("last_login", &now).Error; err != nil {
		return nil, err
	}
	return &inspector, nil
}

func (s *AidStore) SetInspectorStatus(id string, status schema.AccountStatus) error {
	result := s.ormDB.Model(schema.Inspector{}).
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

// SetInspectorCode replaces the access code with a custom one. The
// previous code stops working immediately.
func (s *AidStore) SetInspectorCode(id, code string) error {
	if err := ValidateAccessCode(code); err != nil {
		return err
	}
	hash, err := hashSecret(code)
	if err != nil {
		return err
	}

	result := s.ormDB.Model(schema.Inspector{}).
		Where("id = ?", id).
		Update("access_code_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// RegenerateInspectorCode rotates the access code and returns the new
// one for its single display.
func (s *AidStore) RegenerateInspectorCode(id string) (string, error) {
	code := NewAccessCode()
	hash, err := hashSecret(code)
	if err != nil {
		return "", err
	}

	result := s.ormDB.Model(schema.Inspector{}).
		Where("id = ?", id).
		Update("access_code_hash", hash)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrAccountNotFound
	}
	return code, nil
}

func (s *AidStore) DeleteInspector(id string) error {
	result := s.ormDB.Where("id = ?", id).Delete(schema.Inspector{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
