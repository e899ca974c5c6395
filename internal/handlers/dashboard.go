package handlers

import (
	"net/http"

	"github.com/barangayan/brgyems/internal/models"
)

func (r *Router) getDashboard(w http.ResponseWriter, req *http.Request) {
	summary, err := r.dashboard.Summary(req.Context())
	if err != nil {
		r.respondRepoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// getCatalog returns the pick lists the dashboard forms offer
func (r *Router) getCatalog(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{
		"documentTypes":    models.DocumentTypes,
		"documentStatuses": models.DocumentStatuses,
		"reportTypes":      models.ReportTypes,
		"priorityLevels":   models.PriorityLevels,
		"blotterStatuses":  models.BlotterStatuses,
		"feedbackTypes":    models.FeedbackTypes,
	})
}
