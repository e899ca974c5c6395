package repository

import (
	"context"

	"github.com/barangayan/brgyems/internal/models"
	"gorm.io/gorm"
)

const newestFirst = `"Id" DESC`

// StatusCount is one row of a GROUP BY status tally
type StatusCount struct {
	Status string
	Total  int64
}

func countByStatus(ctx context.Context, db *gorm.DB, model interface{}) (map[string]int64, error) {
	var rows []StatusCount
	if err := db.WithContext(ctx).Model(model).
		Select(`"Status" AS status, COUNT(*) AS total`).
		Group("Status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// nullableDate keeps an absent date as SQL NULL
func nullableDate(d *models.Date) interface{} {
	if d == nil || d.IsZero() {
		return nil
	}
	return *d
}

func statusOrPending(status string) string {
	if status == "" {
		return models.StatusPending
	}
	return status
}
