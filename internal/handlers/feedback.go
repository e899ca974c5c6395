package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/barangayan/brgyems/internal/middleware"
	"github.com/barangayan/brgyems/internal/websocket"
)

// FeedbackInput is a feedback submission; the author comes from the session
type FeedbackInput struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (r *Router) listFeedback(w http.ResponseWriter, req *http.Request) {
	limit := 0
	if raw := req.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}

	feedback, err := r.repos.Feedback.GetLatest(req.Context(), limit)
	if err != nil {
		r.respondRepoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, feedback)
}

func (r *Router) createFeedback(w http.ResponseWriter, req *http.Request) {
	var in FeedbackInput
	if err := decodeJSON(req, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(in.Message) == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	claims, _ := middleware.ClaimsFromContext(req.Context())
	rec, err := r.repos.Feedback.Insert(req.Context(), in.Type, in.Message, claims.Name)
	if err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.publish(websocket.EventCreated, websocket.EntityFeedback, strconv.FormatInt(rec.ID, 10))
	respondJSON(w, http.StatusCreated, rec)
}
