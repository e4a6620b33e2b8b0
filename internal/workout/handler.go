package workout

import (
	"errors"
	"net/http"

	"github.com/theofylaktos99/gym-app/internal/auth"
	"github.com/theofylaktos99/gym-app/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), user.NewRepository(db), nil),
	}
}

// ListPrograms godoc
// @Summary      List workout programs
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Program
// @Failure      500  {object}  gin.H
// @Router       /workouts/programs [get]
func (h *Handler) ListPrograms(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	programs, err := h.service.ListPrograms(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch programs"})
		return
	}

	c.JSON(http.StatusOK, programs)
}

// CreateProgram godoc
// @Summary      Create workout program
// @Description  Creates a program within the admin's tenant. Admin only.
// @Tags         workouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateProgramRequest  true  "Program info"
// @Success      201      {object}  Program
// @Failure      400      {object}  gin.H
// @Router       /admin/workouts/programs [post]
func (h *Handler) CreateProgram(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.CreateProgram(c.Request.Context(), tenantID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create program"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// StartSession godoc
// @Summary      Start a workout session
// @Description  Starts a session, optionally tied to a program. One active session per user.
// @Tags         workouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      StartSessionRequest  true  "Session info"
// @Success      201      {object}  Session
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /workouts/sessions [post]
func (h *Handler) StartSession(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.service.Start(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "Another workout is already in progress"})
		case errors.Is(err, ErrProgramNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start workout"})
		}
		return
	}

	c.JSON(http.StatusCreated, sess)
}

// CompleteSession godoc
// @Summary      Complete a workout session
// @Description  Marks the session completed and adds it to the user's stats.
// @Tags         workouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                  true  "Session ID"
// @Param        request    body      CompleteSessionRequest  true  "Completion info"
// @Success      200        {object}  user.Stats
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /workouts/sessions/{sessionID}/complete [post]
func (h *Handler) CompleteSession(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.service.Complete(c.Request.Context(), userID, c.Param("sessionID"), req)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, u.Stats())
}

// CancelSession godoc
// @Summary      Cancel a workout session
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  gin.H
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /workouts/sessions/{sessionID}/cancel [post]
func (h *Handler) CancelSession(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), userID, c.Param("sessionID")); err != nil {
		h.writeSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout cancelled"})
}

// ListSessions godoc
// @Summary      Workout history
// @Description  Returns the caller's recent workout sessions, newest first.
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Session
// @Failure      500  {object}  gin.H
// @Router       /workouts/sessions [get]
func (h *Handler) ListSessions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sessions, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *Handler) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, ErrNotSessionOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Session belongs to another user"})
	case errors.Is(err, ErrSessionNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "Session is not in progress"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
	}
}
