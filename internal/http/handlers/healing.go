package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neurohealing-backend/internal/http/response"
	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
	"github.com/yungbote/neurohealing-backend/internal/pkg/dbctx"
	"github.com/yungbote/neurohealing-backend/internal/services"
)

type HealingHandler struct {
	healing services.HealingService
}

func NewHealingHandler(healingService services.HealingService) *HealingHandler {
	return &HealingHandler{healing: healingService}
}

// POST /api/users/:user_id/snapshots
func (h *HealingHandler) RecordSnapshot(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var snap healing.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if len(snap.BrainImpacts) == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_snapshot", errors.New("brain_impacts must name at least one region"))
		return
	}
	row, err := h.healing.RecordSnapshot(dbctx.Context{Ctx: c.Request.Context()}, userID, nil, snap)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"snapshot": row})
}

// GET /api/users/:user_id/healing?factors=therapy,sleep
func (h *HealingHandler) GetMetrics(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	factors := healing.ParseFactors(c.Query("factors"))
	view, err := h.healing.Metrics(c.Request.Context(), userID, factors)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// GET /api/users/:user_id/timeline
func (h *HealingHandler) GetTimeline(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	tl, err := h.healing.Timeline(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, tl)
}

// POST /api/users/:user_id/milestones/:key/celebrate
func (h *HealingHandler) Celebrate(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	row, err := h.healing.Celebrate(c.Request.Context(), userID, c.Param("key"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"celebration": row})
}
