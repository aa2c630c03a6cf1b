package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Organization is an aid provider that pledges against requests
type Organization struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name          string         `json:"name"`
	ContactPhone  string         `json:"contact_phone" gorm:"unique_index"`
	ContactEmail  string         `json:"contact_email"`
	Description   string         `json:"description"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	Region        string         `json:"region"`
	ServiceTypes  pq.StringArray `json:"service_types" gorm:"type:text[]"`
	CoverageAreas pq.StringArray `json:"coverage_areas" gorm:"type:text[]"`

	// bcrypt hash of the access code, never serialized
	AccessCodeHash string `json:"-"`

	Status         AccountStatus `json:"status" sql:"default:'active'"`
	TotalCompleted int           `json:"total_completed"`
	LastLogin      *time.Time    `json:"last_login"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

const CoverageCollection = "coverage"

// CoveragePoint is the mongo document positioning an organization for
// nearest-provider lookups.
type CoveragePoint struct {
	OrganizationID string  `bson:"organization_id"`
	Location       GeoJSON `bson:"location"`
}

// GeoJSON point, longitude first
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

func NewCoveragePoint(orgID string, loc Location) CoveragePoint {
	return CoveragePoint{
		OrganizationID: orgID,
		Location: GeoJSON{
			Type:        "Point",
			Coordinates: []float64{loc.Longitude, loc.Latitude},
		},
	}
}
