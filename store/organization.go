package store

import (
	"time"

	"github.com/lib/pq"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// OrganizationParams carries the admin-supplied organization profile
type OrganizationParams struct {
	Name          string           `json:"name"`
	ContactPhone  string           `json:"contact_phone"`
	ContactEmail  string           `json:"contact_email"`
	Description   string           `json:"description"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	Region        string           `json:"region"`
	ServiceTypes  []string         `json:"service_types"`
	CoverageAreas []string         `json:"coverage_areas"`
	Coordinates   *schema.Location `json:"coordinates"`
}

// CreateOrganization registers an aid provider, returning the one-time
// access code. When coordinates are known the organization is also
// positioned in the coverage index for nearest-provider lookups.
func (s *AidStore) CreateOrganization(params OrganizationParams) (*schema.Organization, string, error) {
	code := NewAccessCode()
	hash, err := hashSecret(code)
	if err != nil {
		return nil, "", err
	}

	org := schema.Organization{
		Name:           params.Name,
		ContactPhone:   params.ContactPhone,
		ContactEmail:   params.ContactEmail,
		Description:    params.Description,
		Address:        params.Address,
		City:           params.City,
		Region:         params.Region,
		ServiceTypes:   pq.StringArray(params.ServiceTypes),
		CoverageAreas:  pq.StringArray(params.CoverageAreas),
		AccessCodeHash: hash,
		Status:         schema.AccountActive,
	}
	if err := s.ormDB.Create(&org).Error; err != nil {
		return nil, "", err
	}

	if params.Coordinates != nil {
		if err := s.mongo.AddCoverage(org.ID.String(), *params.Coordinates); err != nil {
			return nil, "", err
		}
	}

	return &org, code, nil
}

func (s *AidStore) GetOrganization(id string) (*schema.Organization, error) {
	var org schema.Organization
	if err := s.ormDB.Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *AidStore) ListOrganizations() ([]schema.Organization, error) {
	orgs := []schema.Organization{}
	if err := s.ormDB.Order("created_at DESC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (s *AidStore) OrganizationLogin(phone, accessCode string) (*schema.Organization, error) {
	var org schema.Organization
	if err := s.ormDB.Where("contact_phone = ?", phone).First(&org).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !compareSecret(org.AccessCodeHash, accessCode) {
		return nil, ErrInvalidCredentials
	}
	if org.Status == schema.AccountSuspended {
		return nil, ErrAccountSuspended
	}

	now := time.Now()
	if err := s.ormDB.Model(&org).Update("last_login", &now).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *AidStore) SetOrganizationStatus(id string, status schema.AccountStatus) error {
	result := s.ormDB.Model(schema.Organization{}).
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

func (s *AidStore) SetOrganizationCode(id, code string) error {
	if err := ValidateAccessCode(code); err != nil {
		return err
	}
	hash, err := hashSecret(code)
	if err != nil {
		return err
	}

	result := s.ormDB.Model(schema.Organization{}).
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

func (s *AidStore) RegenerateOrganizationCode(id string) (string, error) {
	code := NewAccessCode()
	hash, err := hashSecret(code)
	if err != nil {
		return "", err
	}

	result := s.ormDB.Model(schema.Organization{}).
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

func (s *AidStore) DeleteOrganization(id string) error {
	result := s.ormDB.Where("id = ?", id).Delete(schema.Organization{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return s.mongo.RemoveCoverage(id)
}

// RecountOrganizationCompletions rebuilds every total_completed counter
// from the assignments table. Run by the background worker to heal any
// drift from manual admin status edits.
func (s *AidStore) RecountOrganizationCompletions() error {
	return s.ormDB.Exec(`
		UPDATE organizations SET total_completed = sub.total
		FROM (
			SELECT organization_id, COUNT(*) AS total
			FROM assignments
			WHERE status = ?
			GROUP BY organization_id
		) AS sub
		WHERE organizations.id = sub.organization_id;`,
		schema.AssignmentCompleted,
	).Error
}
