// Package repository maps the records tables to plain Go values. Each
// repository owns exactly one table; every call checks a connection out of
// the pool and returns it before the call ends.
package repository

import (
	"context"

	"github.com/barangayan/brgyems/internal/database"
)

// Repositories bundles one of each repository over a shared database
type Repositories struct {
	Users            *UserRepository
	DocumentRequests *DocumentRequestRepository
	Blotters         *BlotterRepository
	Feedback         *FeedbackRepository
}

func New(ctx context.Context, db *database.DB) (*Repositories, error) {
	feedback, err := NewFeedbackRepository(ctx, db)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Users:            NewUserRepository(db),
		DocumentRequests: NewDocumentRequestRepository(db),
		Blotters:         NewBlotterRepository(db),
		Feedback:         feedback,
	}, nil
}
