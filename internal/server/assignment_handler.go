package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lessonbook/internal/service"
)

type AssignmentHandler struct {
	assignments *service.AssignmentService
}

func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

type createAssignmentRequest struct {
	StudentID      int64  `json:"studentId" binding:"required"`
	CompletionTime string `json:"completionTime" binding:"required"`
	Assignment     string `json:"assignment" binding:"required"`
	Notes          string `json:"notes"`
}

// Create сохраняет занятие, проведённое без предварительной записи
// POST /api/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studentId, completionTime and assignment are required"})
		return
	}

	completionTime, err := parseTime(req.CompletionTime)
	if err != nil {
		respondError(c, err)
		return
	}

	ia, err := h.assignments.Create(c.Request.Context(), req.StudentID, completionTime, req.Assignment, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ia)
}

// ListByStudent получает самостоятельные занятия студента
// GET /api/assignments?studentId=1
func (h *AssignmentHandler) ListByStudent(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Query("studentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studentId is required"})
		return
	}

	assignments, err := h.assignments.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
