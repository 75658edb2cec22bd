package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens *auth.TokenManager, roles ...string) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()), SecurityHeaders())
	r.GET("/protected", Authenticate(tokens), Authorize(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(ContextAccountID)})
	})
	return r
}

func TestAuthenticateAndAuthorize(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	admin, err := tokens.Generate("admin-id", "admin@jiffy.local", "admin")
	require.NoError(t, err)
	customer, err := tokens.Generate("cust-id", "c@jiffy.local", "customer")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", admin, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + customer, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}

	r := newProtectedRouter(tokens, "admin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
			assert.Equal(t, "same-origin", w.Header().Get("Cross-Origin-Opener-Policy"))
		})
	}
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		assert.NotNil(t, LoggerFrom(c, nil))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
