package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/barangayan/brgyems/internal/database"
	"github.com/barangayan/brgyems/internal/models"
)

const defaultFeedbackLimit = 50

// FeedbackRepository appends to and reads from the Feedbacks table. There
// are no update or delete operations.
type FeedbackRepository struct {
	db *database.DB
}

// NewFeedbackRepository makes sure the Feedbacks table exists before
// returning, whether or not the bootstrapper already ran.
func NewFeedbackRepository(ctx context.Context, db *database.DB) (*FeedbackRepository, error) {
	if err := db.EnsureTable(ctx, &models.FeedbackRecord{}); err != nil {
		return nil, fmt.Errorf("ensure feedback table: %w", err)
	}
	return &FeedbackRepository{db: db}, nil
}

// Insert appends one feedback entry stamped with the current UTC time
func (r *FeedbackRepository) Insert(ctx context.Context, feedbackType, message, userName string) (*models.FeedbackRecord, error) {
	if strings.TrimSpace(feedbackType) == "" {
		feedbackType = models.FeedbackTypeGeneral
	}

	record := &models.FeedbackRecord{
		Type:      feedbackType,
		Message:   message,
		CreatedAt: models.Now(),
		UserName:  userName,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}
	return record, nil
}

// GetLatest returns up to count entries, newest first. A non-positive count
// falls back to 50.
func (r *FeedbackRepository) GetLatest(ctx context.Context, count int) ([]models.FeedbackRecord, error) {
	if count <= 0 {
		count = defaultFeedbackLimit
	}

	records := []models.FeedbackRecord{}
	if err := r.db.WithContext(ctx).Order(newestFirst).Limit(count).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return records, nil
}
