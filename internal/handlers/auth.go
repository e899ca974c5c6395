package handlers

import (
	"net/http"
	"strconv"

	"github.com/barangayan/brgyems/internal/middleware"
	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/utils"
	"github.com/barangayan/brgyems/internal/websocket"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SessionResponse is returned by register and login
type SessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// register handles account creation and signs the new user in
func (r *Router) register(w http.ResponseWriter, req *http.Request) {
	var regReq RegisterRequest
	if err := decodeJSON(req, &regReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := r.repos.Users.CreateUser(req.Context(), regReq.FirstName, regReq.LastName, regReq.Email, regReq.Password)
	if err != nil {
		r.respondRepoError(w, err)
		return
	}

	token, err := utils.GenerateSessionToken(user, r.server.JWTSecret, r.server.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "User created but failed to generate token")
		return
	}

	r.log.Info().Str("email", user.Email).Msg("👤 Account registered")
	r.publish(websocket.EventCreated, websocket.EntityUser, strconv.FormatInt(user.ID, 10))
	respondJSON(w, http.StatusCreated, SessionResponse{Token: token, User: user})
}

// login handles user login
func (r *Router) login(w http.ResponseWriter, req *http.Request) {
	var loginReq LoginRequest
	if err := decodeJSON(req, &loginReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := r.repos.Users.Authenticate(req.Context(), loginReq.Email, loginReq.Password)
	if err != nil {
		r.respondRepoError(w, err)
		return
	}

	token, err := utils.GenerateSessionToken(user, r.server.JWTSecret, r.server.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{Token: token, User: user})
}

// me returns the signed-in session
func (r *Router) me(w http.ResponseWriter, req *http.Request) {
	claims, _ := middleware.ClaimsFromContext(req.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":    claims.UserID,
		"email": claims.Email,
		"name":  claims.Name,
	})
}
