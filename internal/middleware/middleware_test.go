package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "office-secret"

func protected(t *testing.T) http.Handler {
	return Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(claims.Email))
	}))
}

func TestAuthAcceptsValidToken(t *testing.T) {
	user := &models.User{ID: 3, FirstName: "Juan", LastName: "Dela Cruz", Email: "juan@example.com"}
	token, err := utils.GenerateSessionToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	protected(t).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "juan@example.com", rr.Body.String())
}

func TestAuthRejects(t *testing.T) {
	user := &models.User{ID: 3, Email: "juan@example.com"}
	otherSecret, err := utils.GenerateSessionToken(user, "another-secret", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateSessionToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic abc",
		"bad secret":   "Bearer " + otherSecret,
		"expired":      "Bearer " + expired,
		"garbage":      "Bearer not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			protected(t).ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := RequestLogger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/blotters", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, buf.String(), `"status":201`)
	assert.Contains(t, buf.String(), `"path":"/api/blotters"`)
}
