package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/services/printer"
	"github.com/barangayan/brgyems/internal/websocket"
	"github.com/gorilla/mux"
)

// DocumentRequestInput is the editable part of a document request
type DocumentRequestInput struct {
	Type                   string       `json:"type"`
	RequesterName          string       `json:"requesterName"`
	DateFiled              models.Date  `json:"dateFiled"`
	Status                 string       `json:"status"`
	ContactNumber          string       `json:"contactNumber"`
	Purpose                string       `json:"purpose"`
	PickupDate             *models.Date `json:"pickupDate"`
	Copies                 int          `json:"copies"`
	AdditionalRequirements string       `json:"additionalRequirements"`
}

// StatusInput carries a status change
type StatusInput struct {
	Status string `json:"status"`
}

func (in DocumentRequestInput) record(requestID string) *models.DocumentRequest {
	return &models.DocumentRequest{
		RequestID:              requestID,
		Type:                   in.Type,
		RequesterName:          in.RequesterName,
		DateFiled:              in.DateFiled,
		Status:                 in.Status,
		ContactNumber:          in.ContactNumber,
		Purpose:                in.Purpose,
		PickupDate:             in.PickupDate,
		Copies:                 in.Copies,
		AdditionalRequirements: in.AdditionalRequirements,
	}
}

func (r *Router) listRequests(w http.ResponseWriter, req *http.Request) {
	requests, err := r.repos.DocumentRequests.GetAll(req.Context())
	if err != nil {
		r.respondRepoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (r *Router) getRequest(w http.ResponseWriter, req *http.Request) {
	rec, err := r.repos.DocumentRequests.GetByRequestID(req.Context(), mux.Vars(req)["requestId"])
	if err != nil {
		r.respondRepoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (r *Router) createRequest(w http.ResponseWriter, req *http.Request) {
	var in DocumentRequestInput
	if err := decodeJSON(req, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Type == "" || in.RequesterName == "" {
		respondError(w, http.StatusBadRequest, "Document type and requester name are required")
		return
	}

	rec := in.record("")
	requestID, err := r.repos.DocumentRequests.Insert(req.Context(), rec)
	if err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.log.Info().Str("requestId", requestID).Str("type", rec.Type).Msg("📄 Document request filed")
	r.publish(websocket.EventCreated, websocket.EntityDocumentRequest, requestID)
	respondJSON(w, http.StatusCreated, rec)
}

func (r *Router) updateRequest(w http.ResponseWriter, req *http.Request) {
	requestID := mux.Vars(req)["requestId"]
	var in DocumentRequestInput
	if err := decodeJSON(req, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.repos.DocumentRequests.UpdateDetails(req.Context(), in.record(requestID)); err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.publish(websocket.EventUpdated, websocket.EntityDocumentRequest, requestID)
	r.getRequest(w, req)
}

func (r *Router) updateRequestStatus(w http.ResponseWriter, req *http.Request) {
	requestID := mux.Vars(req)["requestId"]
	var in StatusInput
	if err := decodeJSON(req, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.repos.DocumentRequests.UpdateStatus(req.Context(), requestID, in.Status); err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.publish(websocket.EventUpdated, websocket.EntityDocumentRequest, requestID)
	r.getRequest(w, req)
}

func (r *Router) deleteRequest(w http.ResponseWriter, req *http.Request) {
	requestID := mux.Vars(req)["requestId"]
	if err := r.repos.DocumentRequests.Delete(req.Context(), requestID); err != nil {
		r.respondRepoError(w, err)
		return
	}

	r.publish(websocket.EventDeleted, websocket.EntityDocumentRequest, requestID)
	w.WriteHeader(http.StatusNoContent)
}

// requestSlip streams the printable claim slip
func (r *Router) requestSlip(w http.ResponseWriter, req *http.Request) {
	rec, err := r.repos.DocumentRequests.GetByRequestID(req.Context(), mux.Vars(req)["requestId"])
	if err != nil {
		r.respondRepoError(w, err)
		return
	}

	pdfBytes, err := printer.RequestSlipPDF(rec)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate PDF: %v", err))
		return
	}

	// Set headers for download
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.pdf\"", rec.RequestID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Write(pdfBytes)
}
