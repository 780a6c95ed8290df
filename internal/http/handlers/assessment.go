package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/neurohealing-backend/internal/http/response"
	"github.com/yungbote/neurohealing-backend/internal/services"
)

type AssessmentHandler struct {
	assessments services.AssessmentService
}

func NewAssessmentHandler(assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// POST /api/assessments/score
func (h *AssessmentHandler) Score(c *gin.Context) {
	var in services.ScoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.assessments.Score(c.Request.Context(), in)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/users/:user_id/assessments
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var in services.SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	view, err := h.assessments.Submit(c.Request.Context(), userID, in)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

// GET /api/users/:user_id/assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	userID, id, ok := assessmentParams(c)
	if !ok {
		return
	}
	view, err := h.assessments.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// GET /api/users/:user_id/assessments/:id/impact.png
func (h *AssessmentHandler) ImpactChart(c *gin.Context) {
	userID, id, ok := assessmentParams(c)
	if !ok {
		return
	}
	raw, err := h.assessments.ImpactChart(c.Request.Context(), userID, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", raw)
}

func userIDParam(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return uuid.Nil, false
	}
	return userID, true
}

func assessmentParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := userIDParam(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assessment_id", err)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
