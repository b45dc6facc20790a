package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lessonbook/internal/service"
)

type QuestionnaireHandler struct {
	questionnaires *service.QuestionnaireService
}

func NewQuestionnaireHandler(questionnaires *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaires: questionnaires}
}

type questionnaireRequest struct {
	Covered      string `json:"covered" binding:"required"`
	Progress     string `json:"progress" binding:"required"`
	Difficulties string `json:"difficulties"`
	NextSteps    string `json:"nextSteps"`
}

// Submit сохраняет анкету по итогам занятия и закрывает запись
// POST /api/appointments/:id/questionnaire
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req questionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "covered and progress are required"})
		return
	}

	qr, err := h.questionnaires.Submit(c.Request.Context(), id, service.QuestionnaireInput{
		Covered:      req.Covered,
		Progress:     req.Progress,
		Difficulties: req.Difficulties,
		NextSteps:    req.NextSteps,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, qr)
}

// List получает анкеты по записи
// GET /api/appointments/:id/questionnaire
func (h *QuestionnaireHandler) List(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	responses, err := h.questionnaires.ListByAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"responses": responses})
}
