package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidlink-inc/aidlink-api/schema"
)

// Coverage - operations for organization coverage points
type Coverage interface {
	AddCoverage(organizationID string, location schema.Location) error
	RemoveCoverage(organizationID string) error
	NearestOrganizations(distance int, location schema.Location) ([]string, error)
}

// AddCoverage places or repositions an organization in the coverage
// index
func (m *mongoDB) AddCoverage(organizationID string, location schema.Location) error {
	c := m.client.Database(m.database).Collection(schema.CoverageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	point := schema.NewCoveragePoint(organizationID, location)

	query := bson.M{"organization_id": organizationID}
	update := bson.M{"$set": point}

	if _, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true)); err != nil {
		log.WithFields(log.Fields{
			"prefix":          mongoLogPrefix,
			"organization_id": organizationID,
			"error":           err,
		}).Error("upsert coverage point")
		return err
	}
	return nil
}

func (m *mongoDB) RemoveCoverage(organizationID string) error {
	c := m.client.Database(m.database).Collection(schema.CoverageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := c.DeleteOne(ctx, bson.M{"organization_id": organizationID})
	return err
}

// NearestOrganizations - find organizations around a point by distance
// in meters, nearest first
func (m *mongoDB) NearestOrganizations(distance int, location schema.Location) ([]string, error) {
	query := distanceQuery(distance, location)
	c := m.client.Database(m.database).Collection(schema.CoverageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearest organizations with error: %s", err)
		return []string{}, fmt.Errorf("nearest organizations query with error: %s", err)
	}

	organizationIDs := make([]string, 0)
	var record schema.CoveragePoint

	for cur.Next(ctx) {
		err = cur.Decode(&record)
		if nil != err {
			log.WithField("prefix", mongoLogPrefix).Infof("query nearest organizations with error: %s", err)
			return []string{}, fmt.Errorf("nearest organizations decode record with error: %s", err)
		}
		organizationIDs = append(organizationIDs, record.OrganizationID)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearest organizations query gets %d ids", len(organizationIDs))

	return organizationIDs, nil
}

func distanceQuery(distance int, location schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{location.Longitude, location.Latitude},
				}, {
					Key:   "$maxDistance",
					Value: distance,
				}},
			}},
		}},
	}}
}
