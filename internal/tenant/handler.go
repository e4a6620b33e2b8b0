package tenant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

var ErrSubdomainTaken = errors.New("subdomain already exists")

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// CreateTenant godoc
// @Summary      Register a gym
// @Description  Creates a new tenant (gym organization).
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTenantRequest  true  "Tenant info"
// @Success      201      {object}  Tenant
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /tenants [post]
func (h *Handler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.repo.SubdomainExists(c.Request.Context(), req.Subdomain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Subdomain already taken"})
		return
	}

	t, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// ListTenants godoc
// @Summary      List tenants
// @Description  Returns every registered tenant. Admin only.
// @Tags         tenants
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Tenant
// @Failure      500  {object}  gin.H
// @Router       /admin/tenants [get]
func (h *Handler) ListTenants(c *gin.Context) {
	tenants, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tenants"})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenantBySubdomain godoc
// @Summary      Resolve tenant by subdomain
// @Description  Looks up a tenant so clients can discover their tenant ID.
// @Tags         tenants
// @Produce      json
// @Param        subdomain  path      string  true  "Tenant subdomain"
// @Success      200        {object}  Tenant
// @Failure      404        {object}  gin.H
// @Router       /tenants/{subdomain} [get]
func (h *Handler) GetTenantBySubdomain(c *gin.Context) {
	t, err := h.repo.GetBySubdomain(c.Request.Context(), c.Param("subdomain"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}
