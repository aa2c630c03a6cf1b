package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidlink-inc/aidlink-api/schema"
)

type staticResolver struct {
	place Place
}

func (r staticResolver) GetPoliticalInfo(schema.Location) (Place, error) {
	return r.place, nil
}

func TestPoliticalInfoUsesDefaultResolver(t *testing.T) {
	defer SetLocationResolver(nil)

	SetLocationResolver(staticResolver{place: Place{Region: "Bagmati", City: "Kathmandu"}})

	place, err := PoliticalInfo(schema.Location{Latitude: 27.7, Longitude: 85.3})
	assert.NoError(t, err)
	assert.Equal(t, "Bagmati", place.Region)
	assert.Equal(t, "Kathmandu", place.City)
}

func TestPoliticalInfoWithoutResolver(t *testing.T) {
	SetLocationResolver(nil)

	_, err := PoliticalInfo(schema.Location{})
	assert.Equal(t, ErrResolverNotInitialized, err)
}
