package area

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/theofylaktos99/gym-app/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Handler{
		service: NewService(NewRepository(db), NewSimulator(rng)),
	}
}

// ListAreas godoc
// @Summary      List gym areas
// @Description  Returns the tenant's areas. Each call applies one occupancy simulation tick.
// @Tags         areas
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   GymArea
// @Failure      500  {object}  gin.H
// @Router       /areas [get]
func (h *Handler) ListAreas(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	areas, err := h.service.ListWithTick(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch areas"})
		return
	}

	c.JSON(http.StatusOK, areas)
}

// GymStatus godoc
// @Summary      Real-time gym status
// @Description  Returns areas with usage percentages. Read-only, does not tick the simulation.
// @Tags         areas
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  GymStatusResponse
// @Failure      500  {object}  gin.H
// @Router       /gym-status [get]
func (h *Handler) GymStatus(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	areas, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch areas"})
		return
	}

	c.JSON(http.StatusOK, Snapshot(areas, time.Now().UTC()))
}

// CreateArea godoc
// @Summary      Create gym area
// @Description  Creates an area within the admin's tenant. Admin only.
// @Tags         areas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAreaRequest  true  "Area info"
// @Success      201      {object}  GymArea
// @Failure      400      {object}  gin.H
// @Router       /admin/areas [post]
func (h *Handler) CreateArea(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsBookable && req.PricePerHour <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bookable areas require an hourly price"})
		return
	}

	a, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create area"})
		return
	}

	c.JSON(http.StatusCreated, a)
}

// PinStatus godoc
// @Summary      Pin area status
// @Description  Pins an area to Maintenance or Class in Session, or releases it to Available. Admin only.
// @Tags         areas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        areaID   path      string            true  "Area ID"
// @Param        request  body      PinStatusRequest  true  "Status"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /admin/areas/{areaID}/status [post]
func (h *Handler) PinStatus(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req PinStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.PinStatus(c.Request.Context(), tenantID, c.Param("areaID"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Maintenance, Class in Session or Available"})
		case errors.Is(err, ErrAreaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
