package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"clinic-console/internal/backend"
	"clinic-console/internal/session"
	"clinic-console/internal/usecase/visitor"
)

// newBackendStub serves scripted backend responses for handler tests.
func newBackendStub(t *testing.T, routes map[string]any) *backend.Client {
	mux := http.NewServeMux()
	for pattern, payload := range routes {
		p := payload
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(p)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.New(backend.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, zaptest.NewLogger(t))
}

func newSessionStore(t *testing.T, api *backend.Client) *session.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	store, err := session.NewStore(db, api, zaptest.NewLogger(t))
	require.NoError(t, err)
	return store
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		api := newBackendStub(t, map[string]any{
			"POST /auth/login": map[string]any{
				"success": true,
				"token":   "tok-123",
				"user":    map[string]any{"username": "admin", "role": "admin"},
			},
		})
		store := newSessionStore(t, api)
		h := NewAuthHandler(store, zaptest.NewLogger(t))

		r := gin.New()
		r.POST("/auth/login", h.Login)

		w := postJSON(r, "/auth/login", LoginRequest{Username: "admin", Password: "secret"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.True(t, store.IsAdmin())
	})

	t.Run("missing fields", func(t *testing.T) {
		api := newBackendStub(t, nil)
		h := NewAuthHandler(newSessionStore(t, api), zaptest.NewLogger(t))

		r := gin.New()
		r.POST("/auth/login", h.Login)

		w := postJSON(r, "/auth/login", map[string]string{"username": "admin"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		api := newBackendStub(t, map[string]any{
			"POST /auth/login": map[string]any{"success": false, "message": "Invalid credentials"},
		})
		store := newSessionStore(t, api)
		h := NewAuthHandler(store, zaptest.NewLogger(t))

		r := gin.New()
		r.POST("/auth/login", h.Login)

		w := postJSON(r, "/auth/login", LoginRequest{Username: "admin", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Invalid credentials", resp["error"])
		assert.False(t, store.IsAdmin())
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	api := newBackendStub(t, nil)
	h := NewAuthHandler(newSessionStore(t, api), zaptest.NewLogger(t))

	r := gin.New()
	r.GET("/auth/me", h.Me)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure lists every violation", func(t *testing.T) {
		api := newBackendStub(t, nil)
		uc := visitor.New(api, zaptest.NewLogger(t))
		h := NewPublicHandler(uc, api, zaptest.NewLogger(t))

		r := gin.New()
		r.POST("/signup", h.Signup)

		w := postJSON(r, "/signup", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
		assert.Contains(t, resp.Errors, "First name is required")
		assert.Contains(t, resp.Errors, "You must agree to the terms and conditions")
	})

	t.Run("valid form reaches the backend", func(t *testing.T) {
		api := newBackendStub(t, map[string]any{
			"POST /auth/signup": map[string]any{
				"success": true,
				"user":    map[string]any{"_id": "u1", "firstName": "Sara"},
			},
		})
		uc := visitor.New(api, zaptest.NewLogger(t))
		h := NewPublicHandler(uc, api, zaptest.NewLogger(t))

		r := gin.New()
		r.POST("/signup", h.Signup)

		w := postJSON(r, "/signup", map[string]any{
			"firstName":   "Sara",
			"lastName":    "Ahmed",
			"email":       "sara@example.com",
			"phone":       "3612 3456",
			"countryCode": "+973",
			"dateOfBirth": "1990-03-20",
			"gender":      "female",
			"address": map[string]string{
				"street": "Road 2832", "city": "Manama", "state": "Capital",
				"postalCode": "317", "country": "Bahrain",
			},
			"agreeToTerms": true,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})
}

func TestPublicHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("backend up", func(t *testing.T) {
		api := newBackendStub(t, map[string]any{
			"GET /health": map[string]any{"success": true},
		})
		h := NewPublicHandler(visitor.New(api, zaptest.NewLogger(t)), api, zaptest.NewLogger(t))

		r := gin.New()
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("backend down", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		api := backend.New(backend.Config{BaseURL: srv.URL, Timeout: time.Second}, zaptest.NewLogger(t))
		h := NewPublicHandler(visitor.New(api, zaptest.NewLogger(t)), api, zaptest.NewLogger(t))

		r := gin.New()
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
