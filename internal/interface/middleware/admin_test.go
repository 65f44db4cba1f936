package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rizkydarmawan/goblog/internal/interface/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubIdentity mimics a successful Auth pass with the given role.
func stubIdentity(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, int64(1))
		c.Set(middleware.CtxUserRole, role)
		c.Next()
	}
}

func TestAdminRequired(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
		wantCalled bool
	}{
		{name: "admin passes", role: "admin", wantStatus: http.StatusOK, wantCalled: true},
		{name: "regular user forbidden", role: "user", wantStatus: http.StatusForbidden, wantCalled: false},
		{name: "no role forbidden", role: "", wantStatus: http.StatusForbidden, wantCalled: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			r := gin.New()
			r.POST("/posts", stubIdentity(tt.role), middleware.AdminRequired(), func(c *gin.Context) {
				called = true
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/posts", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			// the guarded handler must not run on a forbidden outcome
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestAuthMissingToken(t *testing.T) {
	r := gin.New()
	r.POST("/comments", middleware.Auth(nil, testJWT()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGarbageToken(t *testing.T) {
	r := gin.New()
	r.POST("/comments", middleware.Auth(nil, testJWT()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "not-a-jwt"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
