package handlers

import (
	"net/http"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/websocket"
	"github.com/gorilla/mux"
)

// BlotterInput is the editable part of a blotter report
type BlotterInput struct {
	ReportType       string      `json:"reportType"`
	PriorityLevel    string      `json:"priorityLevel"`
	Barangay         string      `json:"barangay"`
	Complainant      string      `json:"complainant"`
	Respondent       string      `json:"respondent"`
	IncidentDate     models.Date `json:"incidentDate"`
	IncidentLocation string      `json:"incidentLocation"`
	Description      string      `json:"description"`
	Witnesses        string      `json:"witnesses"`
	Status           string      `json:"status"`
	DateReported     models.Date `json:"dateReported"`
}

func (in BlotterInput) record(caseNo string) *models.BlotterRecord {
	return &models.BlotterRecord{
		CaseNo:           caseNo,
		ReportType:       in.ReportType,
		PriorityLevel:    in.PriorityLevel,
		Barangay:         in.Barangay,
		Complainant:      in.Complainant,
		Respondent:       in.Respondent,
		IncidentDate:     in.IncidentDate,
		IncidentLocation: in.IncidentLocation,
		Description:      in.Description,
		Witnesses:        in.Witnesses,
		Status:           in.Status,
		DateReported:     in.DateReported,
	}
}

func (r *Router) listBlotters(w http.ResponseWriter, req *http.Request) {
	blotters, err := r.repos.Blotters.GetAll(req.Context())
	if err != nil {
		r.respondRepoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, blotters)
}

func (r *Router) getBlotter(w http.ResponseWriter, req *http.Request) {
	rec, err := r.repos.Blotters.GetByCaseNo(req.Context(), mux.Vars(req)["caseNo"])
	if err != nil {
		r.respondRepoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (r *Router) createBlotter(w http.ResponseWriter, req *http.Request) {
	var in BlotterInput
	if err := decodeJSON(req, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Complainant == "" {
		respondError(w, http.StatusBadRequest, "Complainant is required")
		return
	}

	rec := in.record("")
	caseNo, err := r.repos.Blotters.Insert(req.Context(), rec)
	if err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.log.Info().Str("caseNo", caseNo).Str("priority", rec.PriorityLevel).Msg("📒 Blotter report filed")
	r.publish(websocket.EventCreated, websocket.EntityBlotter, caseNo)
	respondJSON(w, http.StatusCreated, rec)
}

func (r *Router) updateBlotter(w http.ResponseWriter, req *http.Request) {
	caseNo := mux.Vars(req)["caseNo"]
	var in BlotterInput
	if err := decodeJSON(req, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.repos.Blotters.UpdateDetails(req.Context(), in.record(caseNo)); err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.publish(websocket.EventUpdated, websocket.EntityBlotter, caseNo)
	r.getBlotter(w, req)
}

func (r *Router) updateBlotterStatus(w http.ResponseWriter, req *http.Request) {
	caseNo := mux.Vars(req)["caseNo"]
	var in StatusInput
	if err := decodeJSON(req, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.repos.Blotters.UpdateStatus(req.Context(), caseNo, in.Status); err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.publish(websocket.EventUpdated, websocket.EntityBlotter, caseNo)
	r.getBlotter(w, req)
}

func (r *Router) deleteBlotter(w http.ResponseWriter, req *http.Request) {
	caseNo := mux.Vars(req)["caseNo"]
	if err := r.repos.Blotters.Delete(req.Context(), caseNo); err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.publish(websocket.EventDeleted, websocket.EntityBlotter, caseNo)
	w.WriteHeader(http.StatusNoContent)
}
