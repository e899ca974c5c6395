package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/barangayan/brgyems/internal/database"
	"github.com/barangayan/brgyems/internal/models"
	"gorm.io/gorm"
)

const byRequestID = `"RequestId" = ?`

// DocumentRequestRepository owns the DocumentRequests table
type DocumentRequestRepository struct {
	db *database.DB
}

func NewDocumentRequestRepository(db *database.DB) *DocumentRequestRepository {
	return &DocumentRequestRepository{db: db}
}

// GetAll returns every request, most recently filed first
func (r *DocumentRequestRepository) GetAll(ctx context.Context) ([]models.DocumentRequest, error) {
	requests := []models.DocumentRequest{}
	if err := r.db.WithContext(ctx).Order(newestFirst).Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list document requests: %w", err)
	}
	return requests, nil
}

// GetByRequestID returns the request with the given REQ-#### identifier
func (r *DocumentRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*models.DocumentRequest, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, ErrNotFound
	}

	var request models.DocumentRequest
	err := r.db.WithContext(ctx).Where(byRequestID, requestID).Limit(1).Take(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document request %s: %w", requestID, err)
	}
	return &request, nil
}

// Insert stores rec under the next REQ-#### identifier and returns it. Empty
// optional fields are defaulted first; rec is updated in place.
func (r *DocumentRequestRepository) Insert(ctx context.Context, rec *models.DocumentRequest) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("insert document request: record is nil")
	}

	row := *rec
	row.Status = statusOrPending(row.Status)
	if row.DateFiled.IsZero() {
		row.DateFiled = models.Today()
	}
	if row.Copies <= 0 {
		row.Copies = 1
	}
	if row.PickupDate != nil && row.PickupDate.IsZero() {
		row.PickupDate = nil
	}

	requestID, err := requestSequence.insert(ctx, r.db.DB, func(id int64, identifier string) interface{} {
		row.ID = id
		row.RequestID = identifier
		return &row
	})
	if err != nil {
		return "", err
	}

	*rec = row
	return requestID, nil
}

// UpdateStatus overwrites the status only. Any text is accepted; an empty
// status resets the request to Pending.
func (r *DocumentRequestRepository) UpdateStatus(ctx context.Context, requestID, status string) error {
	result := r.db.WithContext(ctx).Model(&models.DocumentRequest{}).
		Where(byRequestID, requestID).
		Update("Status", statusOrPending(status))
	return affected("update document request status", requestID, result)
}

// UpdateDetails rewrites every editable field of the request identified by
// rec.RequestID. Status, identifier and filing date are left alone.
func (r *DocumentRequestRepository) UpdateDetails(ctx context.Context, rec *models.DocumentRequest) error {
	if rec == nil || strings.TrimSpace(rec.RequestID) == "" {
		return ErrNotFound
	}

	copies := rec.Copies
	if copies <= 0 {
		copies = 1
	}

	result := r.db.WithContext(ctx).Model(&models.DocumentRequest{}).
		Where(byRequestID, rec.RequestID).
		Updates(map[string]interface{}{
			"Type":                   rec.Type,
			"RequesterName":          rec.RequesterName,
			"ContactNumber":          rec.ContactNumber,
			"Purpose":                rec.Purpose,
			"PickupDate":             nullableDate(rec.PickupDate),
			"Copies":                 copies,
			"AdditionalRequirements": rec.AdditionalRequirements,
		})
	return affected("update document request", rec.RequestID, result)
}

// Delete permanently removes the request. Unknown identifiers are ignored.
func (r *DocumentRequestRepository) Delete(ctx context.Context, requestID string) error {
	if err := r.db.WithContext(ctx).Where(byRequestID, requestID).Delete(&models.DocumentRequest{}).Error; err != nil {
		return fmt.Errorf("delete document request %s: %w", requestID, err)
	}
	return nil
}

// Count returns the number of stored requests
func (r *DocumentRequestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.DocumentRequest{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count document requests: %w", err)
	}
	return n, nil
}

// CountByStatus tallies requests per status
func (r *DocumentRequestRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := countByStatus(ctx, r.db.DB, &models.DocumentRequest{})
	if err != nil {
		return nil, fmt.Errorf("count document requests by status: %w", err)
	}
	return counts, nil
}

func affected(op, identifier string, result *gorm.DB) error {
	if result.Error != nil {
		return fmt.Errorf("%s %s: %w", op, identifier, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
