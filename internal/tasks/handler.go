package tasks

import (
	"errors"
	"net/http"
	"time"

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
	rg.GET("/tasks", h.list)
	rg.POST("/tasks", h.create)
	rg.PATCH("/tasks/:id", h.update)
	rg.DELETE("/tasks/:id", h.remove)
}

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

func (h *Handler) list(c *gin.Context) {
	studentID := middleware.UserIDFromContext(c)
	items, err := h.Svc.List(c.Request.Context(), studentID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list tasks", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"tasks":   items,
		"summary": Summarize(items, time.Now().UTC()),
	})
}

func (h *Handler) create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}
	studentID := middleware.UserIDFromContext(c)
	task, err := h.Svc.Create(c.Request.Context(), studentID, CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusCreated, task)
}

func (h *Handler) update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	studentID := middleware.UserIDFromContext(c)
	task, err := h.Svc.Update(c.Request.Context(), studentID, c.Param("id"), UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.writeTaskError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, task)
}

func (h *Handler) remove(c *gin.Context) {
	studentID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), studentID, c.Param("id")); err != nil {
		h.writeTaskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "task belongs to another student", nil)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	}
}
