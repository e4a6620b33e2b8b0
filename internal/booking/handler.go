package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/theofylaktos99/gym-app/internal/area"
	"github.com/theofylaktos99/gym-app/internal/auth"
	"github.com/theofylaktos99/gym-app/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
	clock   Clock
}

func NewHandler(db *sqlx.DB, notifier Notifier, clock Clock, anchorToDate bool) *Handler {
	repo := NewRepository(db)
	slots := NewSlotGenerator(repo, clock, anchorToDate)
	return &Handler{
		service: NewService(repo, area.NewRepository(db), user.NewRepository(db), notifier, slots, clock),
		clock:   clock,
	}
}

// CreateBooking godoc
// @Summary      Book a time slot
// @Description  Books a half-hour slot in a bookable area. The date defaults to today.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking info"
// @Success      201      {object}  BookingResponse
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID, tenantID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Time slot already booked"})
		case errors.Is(err, ErrAreaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Area not found"})
		case errors.Is(err, ErrAreaNotBookable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Area is not bookable"})
		case errors.Is(err, ErrInvalidTime), errors.Is(err, ErrInvalidDate),
			errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, b.ToResponse())
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Cancels one of the caller's confirmed bookings.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  gin.H
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err := h.service.Cancel(c.Request.Context(), userID, c.Param("bookingID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking belongs to another user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// ListBookings godoc
// @Summary      List my bookings
// @Description  Returns the caller's confirmed bookings, most recent first.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingResponse
// @Failure      500  {object}  gin.H
// @Router       /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// ListSlots godoc
// @Summary      List booking slots
// @Description  Returns the half-hour slots for an area on a date (default today), marking booked ones.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        areaID  path      string  true   "Area ID"
// @Param        date    query     string  false  "Date (YYYY-MM-DD)"
// @Success      200     {array}   Slot
// @Failure      400     {object}  gin.H
// @Router       /areas/{areaID}/slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	date := h.clock.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	slots, err := h.service.Slots(c.Request.Context(), c.Param("areaID"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ListAreaBookings godoc
// @Summary      List bookings for an area
// @Description  Returns every booking for an area with the booking user. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        areaID  path      string  true  "Area ID"
// @Success      200     {array}   BookingWithUser
// @Failure      500     {object}  gin.H
// @Router       /admin/areas/{areaID}/bookings [get]
func (h *Handler) ListAreaBookings(c *gin.Context) {
	bookings, err := h.service.ListByArea(c.Request.Context(), c.Param("areaID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CompleteBooking godoc
// @Summary      Complete a booking
// @Description  Marks a confirmed booking as completed. Admin only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /admin/bookings/{bookingID}/complete [post]
func (h *Handler) CompleteBooking(c *gin.Context) {
	err := h.service.Complete(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found or not confirmed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking completed"})
}
