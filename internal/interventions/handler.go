package interventions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/shared/server/respond"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the counselor-facing endpoints. The caller is
// expected to gate the group by role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interventions", h.suggest)
}

type suggestRequest struct {
	StudentID       string `json:"studentId"`
	SpecificConcern string `json:"specificConcern"`
}

func (h *Handler) suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	if req.StudentID == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "studentId is required", nil)
		return
	}
	result, err := h.Service.Suggest(c.Request.Context(), req.StudentID, req.SpecificConcern)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "student not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate interventions", nil)
		return
	}
	c.Set("generationTier", string(result.Tier))
	respond.JSON(c, http.StatusOK, result)
}
