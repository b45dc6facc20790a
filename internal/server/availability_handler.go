package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lessonbook/internal/service"
)

type AvailabilityHandler struct {
	availabilities *service.AvailabilityService
}

func NewAvailabilityHandler(availabilities *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilities: availabilities}
}

type createAvailabilityRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// Create создаёт окно доступности текущего учителя
// POST /api/availabilities
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req createAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime and endTime are required"})
		return
	}

	startTime, err := parseTime(req.StartTime)
	if err != nil {
		respondError(c, err)
		return
	}
	endTime, err := parseTime(req.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}

	av, err := h.availabilities.Create(c.Request.Context(), callerID(c), startTime, endTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, av)
}

// List получает окна доступности: конкретного учителя по teacherId
// либо всех учителей на сегодня
// GET /api/availabilities?teacherId=5
// GET /api/availabilities?today=1
func (h *AvailabilityHandler) List(c *gin.Context) {
	if teacherParam := c.Query("teacherId"); teacherParam != "" {
		teacherID, err := strconv.ParseInt(teacherParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacherId"})
			return
		}

		availabilities, err := h.availabilities.ListByTeacher(c.Request.Context(), teacherID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"availabilities": availabilities})
		return
	}

	availabilities, err := h.availabilities.ListToday(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availabilities": availabilities})
}

// Delete удаляет окно доступности текущего учителя
// DELETE /api/availabilities/:id
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.availabilities.Delete(c.Request.Context(), id, callerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
