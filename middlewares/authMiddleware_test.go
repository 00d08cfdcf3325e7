package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "github.com/HafidLAADIMI/admin-restau-app/helper"
)

func newProtectedRouter(secret string, handler http.HandlerFunc) *mux.Router {
	router := mux.NewRouter()
	router.Use(Authentication(secret))
	router.HandleFunc("/protected", handler).Methods(http.MethodGet)
	return router
}

func TestAuthenticationAllowsValidToken(t *testing.T) {
	token, _, err := helper.GenerateAllTokens("test-secret", "admin@example.com", "Amina", "El Fassi", "admin-1")
	require.NoError(t, err)

	var gotEmail, gotUid string
	router := newProtectedRouter("test-secret", func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _, _, gotUid = GetUserFromContext(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", gotEmail)
	assert.Equal(t, "admin-1", gotUid)
}

func TestAuthenticationRejectsMissingHeader(t *testing.T) {
	router := newProtectedRouter("test-secret", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticationRejectsBadFormat(t *testing.T) {
	router := newProtectedRouter("test-secret", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed header")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticationRejectsForgedToken(t *testing.T) {
	token, _, err := helper.GenerateAllTokens("other-secret", "admin@example.com", "Amina", "El Fassi", "admin-1")
	require.NoError(t, err)

	router := newProtectedRouter("test-secret", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a forged token")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
