package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardedRouter(claims map[string]interface{}, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		for key, value := range claims {
			c.Set(key, value)
		}
	})
	router.GET("/guarded", guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   int
	}{
		{
			name:   "super-admin passes",
			claims: map[string]interface{}{"user_roles": []string{"super-admin"}},
			want:   http.StatusOK,
		},
		{
			name:   "admin passes",
			claims: map[string]interface{}{"user_roles": []string{"sales", "admin"}},
			want:   http.StatusOK,
		},
		{
			name:   "sales only is rejected",
			claims: map[string]interface{}{"user_roles": []string{"sales"}},
			want:   http.StatusForbidden,
		},
		{
			name:   "no roles in context is rejected",
			claims: map[string]interface{}{},
			want:   http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := guardedRouter(tt.claims, RequireRole("super-admin", "admin"))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   int
	}{
		{
			name:   "holder passes",
			claims: map[string]interface{}{"user_permissions": []string{"manage-leads", "export-leads"}},
			want:   http.StatusOK,
		},
		{
			name:   "missing permission is rejected",
			claims: map[string]interface{}{"user_permissions": []string{"manage-leads"}},
			want:   http.StatusForbidden,
		},
		{
			name:   "no permissions in context is rejected",
			claims: map[string]interface{}{},
			want:   http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := guardedRouter(tt.claims, RequirePermission("export-leads"))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
