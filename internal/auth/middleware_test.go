package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Empty header", "", http.StatusUnauthorized},
		{"Invalid format", "Token abc", http.StatusUnauthorized},
		{"Empty token", "Bearer ", http.StatusUnauthorized},
		{"Garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			c.Request = req

			handler := AuthMiddleware("secret")
			handler(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateAccessToken("user-1", "tenant-1", "maria", "member", "secret")
	assert.NoError(t, err)

	router := gin.New()
	router.Use(AuthMiddleware("secret"))
	router.GET("/", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		tenantID, _ := GetTenantID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "tenant_id": tenantID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "tenant-1")
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		userRole       any
		requiredRoles  []string
		expectedStatus int
	}{
		{"Correct role", "admin", []string{"admin"}, http.StatusOK},
		{"One of several roles", "staff", []string{"admin", "staff"}, http.StatusOK},
		{"Missing role", nil, []string{"admin"}, http.StatusUnauthorized},
		{"Wrong role type", 123, []string{"admin"}, http.StatusUnauthorized},
		{"Insufficient role", "member", []string{"admin"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			if tt.userRole != nil {
				c.Set("user_role", tt.userRole)
			}
			c.Request = httptest.NewRequest("GET", "/", nil)

			handler := RequireRole(tt.requiredRoles...)
			handler(c)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTenantRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/", nil)

		TenantRequired()(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Header present", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("POST", "/", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		c.Request = req

		TenantRequired()(c)
		tenantID, ok := GetTenantID(c)
		assert.True(t, ok)
		assert.Equal(t, "tenant-1", tenantID)
	})
}
