package recommendations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/shared/server/middleware"
	"campus-backend/internal/shared/server/respond"
)

type Handler struct {
	Orchestrator *Orchestrator
	Tracker      *Tracker
}

func NewHandler(orchestrator *Orchestrator, tracker *Tracker) *Handler {
	return &Handler{Orchestrator: orchestrator, Tracker: tracker}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendations", h.generate)
	rg.POST("/recommendations/interactions", h.recordInteraction)
}

func (h *Handler) generate(c *gin.Context) {
	studentID := middleware.UserIDFromContext(c)
	result := h.Orchestrator.GenerateFor(c.Request.Context(), studentID)
	c.Set("generationTier", string(result.Tier))
	respond.JSON(c, http.StatusOK, gin.H{
		"recommendations": result.Recommendations,
		"tier":            result.Tier,
	})
}

type interactionRequest struct {
	RecommendationID string `json:"recommendationId"`
	Action           string `json:"action"`
}

func (h *Handler) recordInteraction(c *gin.Context) {
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	if req.RecommendationID == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "recommendationId is required", nil)
		return
	}
	if !ValidAction(req.Action) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "action must be one of viewed, dismissed, acted_upon", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	interaction, err := h.Tracker.Record(c.Request.Context(), userID, req.RecommendationID, req.Action)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record interaction", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"interaction": interaction})
}
