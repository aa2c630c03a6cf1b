package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/aidlink-inc/aidlink-api/schema"
)

var (
	ErrAssignmentNotExist = fmt.Errorf("the assignment does not exist or is not open for you")
	ErrRequestNotEligible = fmt.Errorf("the request is not open for a pledge")
	ErrPledgeExists       = fmt.Errorf("the request already has an active pledge")
)

// AssignmentFilter narrows assignment listings
type AssignmentFilter struct {
	RequestID      string
	OrganizationID string
	Status         schema.AssignmentStatus
	Page           int
	PerPage        int
}

// CreateAssignment records a pledge and moves the request from new to
// assigned in one transaction. The guarded request update doubles as
// the single-active-pledge lock: a request already assigned refuses a
// second pledge.
func (s *AidStore) CreateAssignment(requestID, organizationID, notes string) (*schema.Assignment, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	result := tx.Model(schema.AidRequest{}).
		Where("id = ? AND status = ?", requestID, schema.RequestNew).
		Update("status", schema.RequestAssigned)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		var request schema.AidRequest
		if err := s.ormDB.Where("id = ?", requestID).First(&request).Error; err != nil {
			return nil, ErrRequestNotExist
		}
		if request.Status == schema.RequestAssigned || request.Status == schema.RequestInProgress {
			return nil, ErrPledgeExists
		}
		return nil, ErrRequestNotEligible
	}

	assignment := schema.Assignment{
		Status: schema.AssignmentPledged,
		Notes:  notes,
	}
	if err := assignment.RequestID.UnmarshalText([]byte(requestID)); err != nil {
		tx.Rollback()
		return nil, ErrRequestNotExist
	}
	if err := assignment.OrganizationID.UnmarshalText([]byte(organizationID)); err != nil {
		tx.Rollback()
		return nil, ErrAssignmentNotExist
	}

	if err := tx.Create(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *AidStore) GetAssignment(id string) (*schema.Assignment, error) {
	var assignment schema.Assignment
	if err := s.ormDB.Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *AidStore) ListAssignments(filter AssignmentFilter) ([]schema.Assignment, int, error) {
	query := s.ormDB.Model(schema.Assignment{})

	if filter.RequestID != "" {
		query = query.Where("request_id = ?", filter.RequestID)
	}
	if filter.OrganizationID != "" {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
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

	assignments := []schema.Assignment{}
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&assignments).Error; err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// ApproveAssignment turns a pledge into active fulfillment. Assignment
// and request move together or not at all, and the contact the
// organization will see is snapshotted onto the assignment.
func (s *AidStore) ApproveAssignment(id, contactName, contactPhone string) (*schema.Assignment, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	result := tx.Model(schema.Assignment{}).
		Where("id = ? AND status = ?", id, schema.AssignmentPledged).
		Updates(map[string]interface{}{
			"status":        schema.AssignmentInProgress,
			"contact_name":  contactName,
			"contact_phone": contactPhone,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAssignmentNotExist
	}

	var assignment schema.Assignment
	if err := tx.Where("id = ?", id).First(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(schema.AidRequest{}).
		Where("id = ? AND status IN (?)", assignment.RequestID,
			[]schema.RequestStatus{schema.RequestAssigned, schema.RequestInProgress}).
		Update("status", schema.RequestInProgress).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CompleteAssignment closes the assignment and its request together and
// bumps the organization's completion counter. Only the owning
// organization may complete, only while in progress.
func (s *AidStore) CompleteAssignment(id, organizationID, notes string) (*schema.Assignment, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	now := time.Now()
	result := tx.Model(schema.Assignment{}).
		Where("id = ? AND organization_id = ? AND status = ?",
			id, organizationID, schema.AssignmentInProgress).
		Updates(map[string]interface{}{
			"status":           schema.AssignmentCompleted,
			"completion_notes": notes,
			"completed_at":     &now,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAssignmentNotExist
	}

	var assignment schema.Assignment
	if err := tx.Where("id = ?", id).First(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(schema.AidRequest{}).
		Where("id = ?", assignment.RequestID).
		Updates(map[string]interface{}{
			"status":       schema.RequestCompleted,
			"completed_at": &now,
		}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(schema.Organization{}).
		Where("id = ?", organizationID).
		Update("total_completed", gorm.Expr("total_completed + 1")).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FailAssignment ends the assignment as failed and sends the request
// back to new so another pledge can pick it up.
func (s *AidStore) FailAssignment(id, organizationID, reason string) (*schema.Assignment, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	result := tx.Model(schema.Assignment{}).
		Where("id = ? AND organization_id = ? AND status = ?",
			id, organizationID, schema.AssignmentInProgress).
		Updates(map[string]interface{}{
			"status":         schema.AssignmentFailed,
			"failure_reason": reason,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAssignmentNotExist
	}

	var assignment schema.Assignment
	if err := tx.Where("id = ?", id).First(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(schema.AidRequest{}).
		Where("id = ?", assignment.RequestID).
		Update("status", schema.RequestNew).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CancelAssignment voids any non-failed assignment and reverts its
// request to new regardless of how far fulfillment had come.
func (s *AidStore) CancelAssignment(id string) (*schema.Assignment, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	cancellable := []schema.AssignmentStatus{
		schema.AssignmentPledged,
		schema.AssignmentInProgress,
	}

	result := tx.Model(schema.Assignment{}).
		Where("id = ? AND status IN (?)", id, cancellable).
		Update("status", schema.AssignmentCancelled)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAssignmentNotExist
	}

	var assignment schema.Assignment
	if err := tx.Where("id = ?", id).First(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(schema.AidRequest{}).
		Where("id = ?", assignment.RequestID).
		Update("status", schema.RequestNew).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}
