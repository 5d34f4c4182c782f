package attendance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/shared/server/middleware"
	"campus-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/attendance/check-in", h.checkIn)
	rg.GET("/attendance", h.list)
}

type checkInRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Status    string `json:"status"`
}

func (h *Handler) checkIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId is required", nil)
		return
	}
	studentID := middleware.UserIDFromContext(c)
	record, err := h.Svc.CheckIn(c.Request.Context(), studentID, req.SessionID, req.Status)
	if err != nil {
		if errors.Is(err, ErrDuplicateCheckIn) {
			respond.Error(c, http.StatusConflict, "duplicate_check_in", "already checked in for this session", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record check-in", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, record)
}

func (h *Handler) list(c *gin.Context) {
	studentID := middleware.UserIDFromContext(c)
	records, err := h.Svc.Recent(c.Request.Context(), studentID, 30)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list attendance", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"records": records,
		"summary": Summarize(records),
	})
}
