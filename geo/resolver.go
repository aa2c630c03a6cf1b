package geo

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/aidlink-inc/aidlink-api/schema"
)

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// Place is the administrative area a coordinate falls into
type Place struct {
	Region  string
	City    string
	Address string
}

// LocationResolver - interface for resolving location
type LocationResolver interface {
	GetPoliticalInfo(schema.Location) (Place, error)
}

var defaultResolver LocationResolver

type GeocodingLocationResolver struct {
	client *maps.Client
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

func (g *GeocodingLocationResolver) GetPoliticalInfo(loc schema.Location) (Place, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		ResultType: []string{"administrative_area_level_2|administrative_area_level_1|locality"},
		Language:   "en",
	})
	if nil != err {
		return Place{}, err
	}

	if len(geos) == 0 {
		return Place{}, ErrNoGeoInfoFound
	}

	var place Place
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 {
			switch a.Types[0] {
			case "administrative_area_level_1":
				place.Region = a.LongName
			case "administrative_area_level_2", "locality":
				if place.City == "" {
					place.City = a.LongName
				}
			}
		}
	}

	place.Address = geos[0].FormattedAddress

	return place, nil
}

func SetLocationResolver(resolver LocationResolver) {
	defaultResolver = resolver
}

func PoliticalInfo(loc schema.Location) (Place, error) {
	if defaultResolver == nil {
		return Place{}, ErrResolverNotInitialized
	}

	return defaultResolver.GetPoliticalInfo(loc)
}
