package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/cookbook/backend/internal/mocks"
	"github.com/pageza/cookbook/backend/internal/types"
)

func newAuthRouter(validator TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware(validator))
	router.POST("/recipes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"device": c.GetString("device")})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	validator := new(mocks.MockTokenValidator)
	validator.On("ValidateToken", "good-token").Return(&types.TokenClaims{Device: "pixel-7"}, nil)
	validator.On("ValidateToken", "bad-token").Return(nil, errors.New("expired"))

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, `{"error":"missing authorization header"}`},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"no token", "Bearer", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"invalid token", "Bearer bad-token", http.StatusUnauthorized, `{"error":"invalid token"}`},
		{"valid token", "Bearer good-token", http.StatusOK, `{"device":"pixel-7"}`},
	}

	router := newAuthRouter(validator)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/recipes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(nil))
	router.GET("/recipes", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/recipes", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
		req.Header.Set("Origin", "http://evil.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
