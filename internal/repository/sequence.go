package repository

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// sequence hands out the human-readable identifiers (REQ-0001, BL-0001) of
// one table. The next number is max(Id)+1, read and consumed inside the same
// transaction while the in-process lock is held, so two inserts from this
// process can never compute the same number.
type sequence struct {
	mu     sync.Mutex
	table  string
	prefix string
}

var (
	requestSequence = &sequence{table: "DocumentRequests", prefix: "REQ"}
	blotterSequence = &sequence{table: "BlotterReports", prefix: "BL"}
)

// FormatIdentifier renders n as PREFIX-000N
func FormatIdentifier(prefix string, n int64) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// insert computes the next key, lets build produce the row for it, and
// creates that row, all in one transaction.
func (s *sequence) insert(ctx context.Context, db *gorm.DB, build func(id int64, identifier string) interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var identifier string
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int64
		if err := tx.Table(s.table).Select(`COALESCE(MAX("Id"), 0) + 1`).Scan(&next).Error; err != nil {
			return fmt.Errorf("next %s key: %w", s.table, err)
		}
		if next < 1 {
			next = 1
		}

		identifier = FormatIdentifier(s.prefix, next)
		if err := tx.Create(build(next, identifier)).Error; err != nil {
			return fmt.Errorf("insert into %s: %w", s.table, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return identifier, nil
}
