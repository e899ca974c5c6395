package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/barangayan/brgyems/internal/config"
	"github.com/barangayan/brgyems/internal/middleware"
	"github.com/barangayan/brgyems/internal/repository"
	"github.com/barangayan/brgyems/internal/services/dashboard"
	"github.com/barangayan/brgyems/internal/utils"
	"github.com/barangayan/brgyems/internal/websocket"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Router wraps the mux router and the records it serves
type Router struct {
	*mux.Router
	repos     *repository.Repositories
	dashboard *dashboard.Service
	hub       *websocket.Hub
	events    websocket.Publisher
	server    config.ServerConfig
	log       zerolog.Logger
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(repos *repository.Repositories, hub *websocket.Hub, server config.ServerConfig, log zerolog.Logger) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		repos:     repos,
		dashboard: dashboard.NewService(repos),
		hub:       hub,
		server:    server,
		log:       log,
	}
	if hub != nil {
		r.events = hub
	}
	r.Use(middleware.RequestLogger(log))

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/login", r.login).Methods("POST")

	// Dashboard change feed; browsers pass the session token as a query parameter
	r.HandleFunc("/ws/dashboard", r.serveDashboardFeed).Methods("GET")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(server.JWTSecret))
	api.HandleFunc("/me", r.me).Methods("GET")
	api.HandleFunc("/dashboard", r.getDashboard).Methods("GET")
	api.HandleFunc("/catalog", r.getCatalog).Methods("GET")

	api.HandleFunc("/requests", r.listRequests).Methods("GET")
	api.HandleFunc("/requests", r.createRequest).Methods("POST")
	api.HandleFunc("/requests/{requestId}", r.getRequest).Methods("GET")
	api.HandleFunc("/requests/{requestId}", r.updateRequest).Methods("PUT")
	api.HandleFunc("/requests/{requestId}", r.deleteRequest).Methods("DELETE")
	api.HandleFunc("/requests/{requestId}/status", r.updateRequestStatus).Methods("PATCH")
	api.HandleFunc("/requests/{requestId}/slip", r.requestSlip).Methods("GET")

	api.HandleFunc("/blotters", r.listBlotters).Methods("GET")
	api.HandleFunc("/blotters", r.createBlotter).Methods("POST")
	api.HandleFunc("/blotters/{caseNo}", r.getBlotter).Methods("GET")
	api.HandleFunc("/blotters/{caseNo}", r.updateBlotter).Methods("PUT")
	api.HandleFunc("/blotters/{caseNo}", r.deleteBlotter).Methods("DELETE")
	api.HandleFunc("/blotters/{caseNo}/status", r.updateBlotterStatus).Methods("PATCH")

	api.HandleFunc("/feedback", r.listFeedback).Methods("GET")
	api.HandleFunc("/feedback", r.createFeedback).Methods("POST")

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (r *Router) serveDashboardFeed(w http.ResponseWriter, req *http.Request) {
	if _, err := utils.ValidateToken(req.URL.Query().Get("token"), r.server.JWTSecret); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	websocket.ServeWs(r.hub, w, req)
}

func (r *Router) publish(eventType, entity, id string) {
	if r.events == nil {
		return
	}
	r.events.Publish(websocket.RecordEvent{Type: eventType, Entity: entity, ID: id})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// respondRepoError maps repository failures onto status codes
func (r *Router) respondRepoError(w http.ResponseWriter, err error) {
	if v, ok := repository.AsValidation(err); ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": v.Message,
			"field": v.Field,
		})
		return
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, repository.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		r.log.Error().Err(err).Msg("❌ Records store failure")
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(req *http.Request, v interface{}) error {
	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
