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

const byCaseNo = `"CaseNo" = ?`

// BlotterRepository owns the BlotterReports table
type BlotterRepository struct {
	db *database.DB
}

func NewBlotterRepository(db *database.DB) *BlotterRepository {
	return &BlotterRepository{db: db}
}

// GetAll returns every report, most recent first
func (r *BlotterRepository) GetAll(ctx context.Context) ([]models.BlotterRecord, error) {
	records := []models.BlotterRecord{}
	if err := r.db.WithContext(ctx).Order(newestFirst).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list blotter reports: %w", err)
	}
	return records, nil
}

// GetByCaseNo returns the report with the given BL-#### case number
func (r *BlotterRepository) GetByCaseNo(ctx context.Context, caseNo string) (*models.BlotterRecord, error) {
	if strings.TrimSpace(caseNo) == "" {
		return nil, ErrNotFound
	}

	var record models.BlotterRecord
	err := r.db.WithContext(ctx).Where(byCaseNo, caseNo).Limit(1).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blotter report %s: %w", caseNo, err)
	}
	return &record, nil
}

// Insert files rec under the next BL-#### case number and returns it
func (r *BlotterRepository) Insert(ctx context.Context, rec *models.BlotterRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("insert blotter report: record is nil")
	}

	row := *rec
	if row.ReportType == "" {
		row.ReportType = models.ReportTypeOther
	}
	if row.PriorityLevel == "" {
		row.PriorityLevel = models.PriorityLow
	}
	row.Status = statusOrPending(row.Status)
	if row.DateReported.IsZero() {
		row.DateReported = models.Today()
	}
	if row.IncidentDate.IsZero() {
		row.IncidentDate = row.DateReported
	}

	caseNo, err := blotterSequence.insert(ctx, r.db.DB, func(id int64, identifier string) interface{} {
		row.ID = id
		row.CaseNo = identifier
		return &row
	})
	if err != nil {
		return "", err
	}

	*rec = row
	return caseNo, nil
}

// UpdateStatus overwrites the status only; any text is accepted
func (r *BlotterRepository) UpdateStatus(ctx context.Context, caseNo, status string) error {
	result := r.db.WithContext(ctx).Model(&models.BlotterRecord{}).
		Where(byCaseNo, caseNo).
		Update("Status", statusOrPending(status))
	return affected("update blotter status", caseNo, result)
}

// UpdateDetails rewrites the narrative fields of the report identified by
// rec.CaseNo. Status, case number and report date are left alone.
func (r *BlotterRepository) UpdateDetails(ctx context.Context, rec *models.BlotterRecord) error {
	if rec == nil || strings.TrimSpace(rec.CaseNo) == "" {
		return ErrNotFound
	}

	reportType := rec.ReportType
	if reportType == "" {
		reportType = models.ReportTypeOther
	}
	priority := rec.PriorityLevel
	if priority == "" {
		priority = models.PriorityLow
	}

	updates := map[string]interface{}{
		"ReportType":       reportType,
		"PriorityLevel":    priority,
		"Barangay":         rec.Barangay,
		"Complainant":      rec.Complainant,
		"Respondent":       rec.Respondent,
		"IncidentLocation": rec.IncidentLocation,
		"Description":      rec.Description,
		"Witnesses":        rec.Witnesses,
	}
	if !rec.IncidentDate.IsZero() {
		updates["IncidentDate"] = rec.IncidentDate
	}

	result := r.db.WithContext(ctx).Model(&models.BlotterRecord{}).
		Where(byCaseNo, rec.CaseNo).
		Updates(updates)
	return affected("update blotter report", rec.CaseNo, result)
}

// Delete permanently removes the report. Unknown case numbers are ignored.
func (r *BlotterRepository) Delete(ctx context.Context, caseNo string) error {
	if err := r.db.WithContext(ctx).Where(byCaseNo, caseNo).Delete(&models.BlotterRecord{}).Error; err != nil {
		return fmt.Errorf("delete blotter report %s: %w", caseNo, err)
	}
	return nil
}

// Count returns the number of stored reports
func (r *BlotterRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.BlotterRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count blotter reports: %w", err)
	}
	return n, nil
}

// CountByStatus tallies reports per status
func (r *BlotterRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := countByStatus(ctx, r.db.DB, &models.BlotterRecord{})
	if err != nil {
		return nil, fmt.Errorf("count blotter reports by status: %w", err)
	}
	return counts, nil
}
