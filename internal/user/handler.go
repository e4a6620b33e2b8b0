package user

import (
	"errors"
	"net/http"

	"github.com/theofylaktos99/gym-app/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, jwtSecret string) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), jwtSecret),
	}
}

// Register godoc
// @Summary      Register member
// @Description  Creates a member account within the tenant given by X-Tenant-ID.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header    string           true  "Tenant ID"
// @Param        request      body      RegisterRequest  true  "Registration info"
// @Success      201          {object}  AuthResponse
// @Failure      400          {object}  gin.H
// @Failure      409          {object}  gin.H
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tenant ID required"})
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, ErrUsernameExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Login
// @Description  Authenticates a user and returns JWT tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header    string        true  "Tenant ID"
// @Param        request      body      LoginRequest  true  "Credentials"
// @Success      200          {object}  AuthResponse
// @Failure      400          {object}  gin.H
// @Failure      401          {object}  gin.H
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tenant ID required"})
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RefreshRequest  true  "Refresh token"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

// GetMe godoc
// @Summary      Current user
// @Description  Returns the authenticated user with workout stats.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      401  {object}  gin.H
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u, "stats": u.Stats()})
}

// Deactivate godoc
// @Summary      Deactivate user
// @Description  Soft-deactivates a user within the admin's tenant. Admin only.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  gin.H
// @Failure      404     {object}  gin.H
// @Router       /admin/users/{userID}/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err := h.service.Deactivate(c.Request.Context(), tenantID, c.Param("userID"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
