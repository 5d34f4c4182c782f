package profiles

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
	rg.GET("/me", h.me)
}

// RegisterCounselorRoutes attaches routes reserved for counselors.
func (h *Handler) RegisterCounselorRoutes(rg *gin.RouterGroup) {
	rg.GET("/students", h.listStudents)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, profile)
}

func (h *Handler) listStudents(c *gin.Context) {
	students, err := h.Svc.ListStudents(c.Request.Context(), 100, 0)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list students", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"students": students})
}
