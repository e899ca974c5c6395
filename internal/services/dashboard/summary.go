// Package dashboard assembles the figures shown on the office landing page.
package dashboard

import (
	"context"
	"fmt"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/repository"
)

// LatestFeedbackCount is how many feedback entries the summary carries
const LatestFeedbackCount = 5

// Summary is a point-in-time snapshot of the records
type Summary struct {
	TotalRequests    int64                   `json:"totalRequests"`
	PendingRequests  int64                   `json:"pendingRequests"`
	RequestsByStatus map[string]int64        `json:"requestsByStatus"`
	TotalBlotters    int64                   `json:"totalBlotters"`
	BlottersByStatus map[string]int64        `json:"blottersByStatus"`
	LatestFeedback   []models.FeedbackRecord `json:"latestFeedback"`
}

// Service reads summaries from the repositories
type Service struct {
	repos *repository.Repositories
}

func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

// Summary counts requests and blotters per status and collects recent feedback.
// Every known status is present in the maps, zero when no row carries it.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	requests, err := s.repos.DocumentRequests.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count requests: %w", err)
	}
	blotters, err := s.repos.Blotters.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count blotters: %w", err)
	}
	feedback, err := s.repos.Feedback.GetLatest(ctx, LatestFeedbackCount)
	if err != nil {
		return nil, fmt.Errorf("latest feedback: %w", err)
	}

	summary := &Summary{
		RequestsByStatus: withStatuses(requests, models.DocumentStatuses),
		BlottersByStatus: withStatuses(blotters, models.BlotterStatuses),
		LatestFeedback:   feedback,
	}
	summary.PendingRequests = summary.RequestsByStatus[models.StatusPending]
	summary.TotalRequests = sum(summary.RequestsByStatus)
	summary.TotalBlotters = sum(summary.BlottersByStatus)
	return summary, nil
}

func withStatuses(counts map[string]int64, statuses []string) map[string]int64 {
	for _, status := range statuses {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}
	return counts
}

func sum(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}
