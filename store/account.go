package store

import (
	"github.com/aidlink-inc/aidlink-api/schema"
)

// CitizenUpdate applies profile edits, nil pointers leave the column
// untouched
type CitizenUpdate struct {
	Email    *string
	FullName *string
	Address  *string
	City     *string
	Region   *string
}

// CreateCitizen registers a citizen keyed by verified phone number
func (s *AidStore) CreateCitizen(phone string) (*schema.Citizen, error) {
	citizen := schema.Citizen{
		Phone: phone,
	}
	if err := s.ormDB.Create(&citizen).Error; err != nil {
		return nil, ErrAccountTaken
	}
	return &citizen, nil
}

func (s *AidStore) GetCitizen(id string) (*schema.Citizen, error) {
	var citizen schema.Citizen
	if err := s.ormDB.Where("id = ?", id).First(&citizen).Error; err != nil {
		return nil, err
	}
	return &citizen, nil
}

func (s *AidStore) GetCitizenByPhone(phone string) (*schema.Citizen, error) {
	var citizen schema.Citizen
	if err := s.ormDB.Where("phone = ?", phone).First(&citizen).Error; err != nil {
		return nil, err
	}
	return &citizen, nil
}

func (s *AidStore) UpdateCitizen(id string, update CitizenUpdate) (*schema.Citizen, error) {
	fields := map[string]interface{}{}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.City != nil {
		fields["city"] = *update.City
	}
	if update.Region != nil {
		fields["region"] = *update.Region
	}

	if len(fields) > 0 {
		result := s.ormDB.Model(schema.Citizen{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrAccountNotFound
		}
	}
	return s.GetCitizen(id)
}
