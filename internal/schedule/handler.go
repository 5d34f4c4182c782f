package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/shared/server/middleware"
	"campus-backend/internal/shared/server/respond"
)

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule", h.list)
}

func (h *Handler) list(c *gin.Context) {
	studentID := middleware.UserIDFromContext(c)
	entries, err := h.Repo.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list schedule", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"entries": entries})
}
