package store

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/aidlink-inc/aidlink-api/schema"
)

var (
	ErrRequestNotExist     = fmt.Errorf("the request does not exist or is not open for you")
	ErrRequestNotDeletable = fmt.Errorf("the request can not be deleted in its current status")
)

// trackingAlphabet has no 0/O or 1/I so codes survive being read aloud
const trackingAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func newTrackingCode() string {
	b := make([]byte, 10)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = trackingAlphabet[int(b[i])%len(trackingAlphabet)]
	}
	return "AR-" + string(b)
}

// RequestParams carries everything needed to open an aid request
type RequestParams struct {
	RequesterID   string           `json:"requester_id"`
	RequesterName string           `json:"requester_name"`
	Phone         string           `json:"phone"`
	Category      schema.Category  `json:"category"`
	Description   string           `json:"description"`
	Quantity      int              `json:"quantity"`
	FamilyMembers int              `json:"family_members"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	Region        string           `json:"region"`
	Coordinates   *schema.Location `json:"coordinates"`
	IsUrgent      schema.Urgency   `json:"is_urgent"`
}

// RequestFilter narrows paginated request listings
type RequestFilter struct {
	Status      schema.RequestStatus
	Category    schema.Category
	Search      string
	UrgentOnly  bool
	FlaggedOnly bool
	InspectorID string
	RequesterID string
	Region      string
	Page        int
	PerPage     int
}

// RequestUpdate applies the fields admins and inspectors may edit.
// Nil pointers leave the column untouched.
type RequestUpdate struct {
	Status         *schema.RequestStatus
	PriorityScore  *int
	IsUrgent       *bool
	AdminNotes     *string
	InspectorNotes *string
}

// CreateRequest opens a new aid request in pending so an inspector can
// vet it. Urgent requests start with a higher priority score.
func (s *AidStore) CreateRequest(params RequestParams) (*schema.AidRequest, error) {
	priority := 50
	if bool(params.IsUrgent) {
		priority = 80
	}

	request := schema.AidRequest{
		RequesterID:   params.RequesterID,
		RequesterName: params.RequesterName,
		Phone:         params.Phone,
		Category:      params.Category,
		Description:   params.Description,
		Quantity:      params.Quantity,
		FamilyMembers: params.FamilyMembers,
		Address:       params.Address,
		City:          params.City,
		Region:        params.Region,
		Coordinates:   params.Coordinates,
		Status:        schema.RequestPending,
		IsUrgent:      params.IsUrgent,
		PriorityScore: priority,
		TrackingCode:  newTrackingCode(),
	}

	if err := s.ormDB.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *AidStore) GetRequest(id string) (*schema.AidRequest, error) {
	var request schema.AidRequest
	if err := s.ormDB.Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *AidStore) GetRequestByTrackingCode(code string) (*schema.AidRequest, error) {
	var request schema.AidRequest
	if err := s.ormDB.Where("tracking_code = ?", code).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListRequests returns one page of requests plus the unpaginated total
func (s *AidStore) ListRequests(filter RequestFilter) ([]schema.AidRequest, int, error) {
	query := s.ormDB.Model(schema.AidRequest{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"description ILIKE ? OR requester_name ILIKE ? OR city ILIKE ? OR tracking_code ILIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if filter.UrgentOnly {
		query = query.Where("is_urgent = ?", true)
	}
	if filter.FlaggedOnly {
		query = query.Where("is_flagged = ?", true)
	}
	if filter.InspectorID != "" {
		query = query.Where("inspector_id = ?", filter.InspectorID)
	}
	if filter.RequesterID != "" {
		query = query.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}

	var total int
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	perPage := filter.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	requests := []schema.AidRequest{}
	if err := query.
		Order("priority_score DESC, created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ActivateRequest moves a pending request to new and binds the first
// inspector to touch it. The guard keeps a second activation from
// rebinding: only a pending row with no inspector is updatable.
func (s *AidStore) ActivateRequest(id, inspectorID string) (*schema.AidRequest, error) {
	result := s.ormDB.Model(schema.AidRequest{}).
		Where("id = ? AND status = ? AND inspector_id = ''", id, schema.RequestPending).
		Updates(map[string]interface{}{
			"status":       schema.RequestNew,
			"inspector_id": inspectorID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}
	return s.GetRequest(id)
}

// RejectRequest closes a pending request with an optional reason kept
// in the inspector notes.
func (s *AidStore) RejectRequest(id, inspectorID, reason string) (*schema.AidRequest, error) {
	result := s.ormDB.Model(schema.AidRequest{}).
		Where("id = ? AND status = ?", id, schema.RequestPending).
		Updates(map[string]interface{}{
			"status":          schema.RequestRejected,
			"inspector_notes": reason,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}
	return s.GetRequest(id)
}

// CancelOwnRequest lets a citizen withdraw a request. The guard
// enforces both ownership and the new status in one statement so a
// stranger or a late cancel surfaces as not-exist.
func (s *AidStore) CancelOwnRequest(id, citizenID string) (*schema.AidRequest, error) {
	result := s.ormDB.Model(schema.AidRequest{}).
		Where("id = ? AND requester_id = ? AND status = ?", id, citizenID, schema.RequestNew).
		Update("status", schema.RequestCancelled)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}
	return s.GetRequest(id)
}

// FlagRequest marks a request suspicious. Orthogonal to status, legal
// at any point of the lifecycle.
func (s *AidStore) FlagRequest(id, inspectorID, reason string) (*schema.AidRequest, error) {
	now := time.Now()
	result := s.ormDB.Model(schema.AidRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_flagged":  true,
			"flag_reason": reason,
			"flagged_by":  inspectorID,
			"flagged_at":  &now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}
	return s.GetRequest(id)
}

// UpdateRequest applies admin/inspector field edits
func (s *AidStore) UpdateRequest(id string, update RequestUpdate) (*schema.AidRequest, error) {
	fields := map[string]interface{}{}
	if update.Status != nil {
		fields["status"] = *update.Status
		if *update.Status == schema.RequestCompleted {
			now := time.Now()
			fields["completed_at"] = &now
		}
	}
	if update.PriorityScore != nil {
		fields["priority_score"] = *update.PriorityScore
	}
	if update.IsUrgent != nil {
		fields["is_urgent"] = *update.IsUrgent
	}
	if update.AdminNotes != nil {
		fields["admin_notes"] = *update.AdminNotes
	}
	if update.InspectorNotes != nil {
		fields["inspector_notes"] = *update.InspectorNotes
	}

	if len(fields) == 0 {
		return s.GetRequest(id)
	}

	result := s.ormDB.Model(schema.AidRequest{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}
	return s.GetRequest(id)
}

// DeleteRequest removes a request when its status is in the allowed
// set. An empty set means no restriction (admin path).
func (s *AidStore) DeleteRequest(id string, allowed []schema.RequestStatus) error {
	query := s.ormDB.Where("id = ?", id)
	if len(allowed) > 0 {
		query = query.Where("status IN (?)", allowed)
	}

	result := query.Delete(schema.AidRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if err := s.ormDB.Where("id = ?", id).First(&schema.AidRequest{}).Error; err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return ErrRequestNotExist
			}
			return err
		}
		return ErrRequestNotDeletable
	}
	return nil
}
