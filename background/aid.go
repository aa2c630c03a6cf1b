package background

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	BROADCAST_URGENT_REQUEST = "5f2c7b1e-8f6a-4c83-9d2e-41b07a6e3c55"
	NOTIFY_PLEDGE_APPROVED   = "c1a9e4d7-02b3-47f5-8a61-9de04cc218f0"
)

const broadcastRange = 50000 // meters

// BroadcastUrgentRequest is a background job to push an urgent request
// to every active organization covering its surroundings
func (m *BackgroundManager) BroadcastUrgentRequest(requestID string) error {
	request, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	if request.Coordinates == nil {
		log.WithFields(log.Fields{
			"prefix":     "background",
			"request_id": requestID,
		}).Info("urgent request has no coordinates, skip broadcast")
		return nil
	}

	ids, err := m.mongoStore.NearestOrganizations(broadcastRange, *request.Coordinates)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	return m.notification.NotifyAccountsByTemplate(ids, BROADCAST_URGENT_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_URGENT_REQUEST",
		"request_id":        requestID,
		"category":          request.Category,
	})
}

// NotifyPledgeApproved is a background job to tell the pledging
// organization that fulfillment may start
func (m *BackgroundManager) NotifyPledgeApproved(assignmentID string) error {
	assignment, err := m.store.GetAssignment(assignmentID)
	if err != nil {
		return err
	}

	return m.notification.NotifyAccountsByTemplate(
		[]string{assignment.OrganizationID.String()},
		NOTIFY_PLEDGE_APPROVED,
		map[string]interface{}{
			"notification_type": "NOTIFY_PLEDGE_APPROVED",
			"assignment_id":     assignmentID,
			"request_id":        assignment.RequestID.String(),
		})
}

// NotifyRequestCompleted is a background job to text the requester
// once their request has been fulfilled
func (m *BackgroundManager) NotifyRequestCompleted(requestID string) error {
	request, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	return m.smsSender.Send(context.Background(), request.Phone,
		fmt.Sprintf("Your aid request %s has been completed. Thank you for using AidLink.", request.TrackingCode))
}

// DeliverOTP is a background job to text a login code out through the
// sms gateway
func (m *BackgroundManager) DeliverOTP(phone, code string) error {
	return m.smsSender.Send(context.Background(),
		phone, fmt.Sprintf("Your AidLink verification code is %s. It expires in 5 minutes.", code))
}

// ExpireOTPSessions is a background job to sweep stale login sessions
func (m *BackgroundManager) ExpireOTPSessions() error {
	expired, err := m.store.ExpireOTPSessions()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":  "background",
		"expired": expired,
	}).Info("expired otp sessions")
	return nil
}

// RecountOrganizationCompletions is a background job to rebuild the
// completion counters from the assignment table
func (m *BackgroundManager) RecountOrganizationCompletions() error {
	return m.store.RecountOrganizationCompletions()
}
