package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
	"lessonbook/internal/service"
)

type AppointmentHandler struct {
	appointments *service.AppointmentService
}

func NewAppointmentHandler(appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type createAppointmentRequest struct {
	StartTime string `json:"startTime" binding:"required"`
}

// Create создаёт запись студента на занятие
// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime is required"})
		return
	}

	startTime, err := parseTime(req.StartTime)
	if err != nil {
		respondError(c, err)
		return
	}

	appt, err := h.appointments.Create(c.Request.Context(), callerID(c), startTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// ListMy получает записи текущего студента
// GET /api/appointments/my
func (h *AppointmentHandler) ListMy(c *gin.Context) {
	appointments, err := h.appointments.ListByStudent(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// ListForTeacher получает записи текущего учителя
// GET /api/appointments/teacher?today=1
func (h *AppointmentHandler) ListForTeacher(c *gin.Context) {
	appointments, err := h.appointments.ListByTeacher(c.Request.Context(), callerID(c), todayParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// ListAll получает все записи для менеджера
// GET /api/appointments?today=1
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.appointments.ListAll(c.Request.Context(), todayParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// Get получает запись по ID
// GET /api/appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	appt, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

type updateAppointmentRequest struct {
	Status            *string `json:"status"`
	TeacherID         *int64  `json:"teacherId"`
	Responded         *bool   `json:"responded"`
	TeacherAssignment *string `json:"teacherAssignment"`
	StartTime         *string `json:"startTime"`
}

// Update применяет одно изменение к записи. Каждый вызов несёт ровно
// одно намерение; при нескольких заполненных сигналах действует
// фиксированный порядок разбора:
// rejected > assigned > статус > teacherId > responded > правка полей.
// PATCH /api/appointments/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	intent, err := buildUpdateIntent(req)
	if err != nil {
		respondError(c, err)
		return
	}

	appt, notificationID, err := h.appointments.Update(c.Request.Context(), id, intent)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"appointment": appt}
	if notificationID != "" {
		resp["notificationId"] = notificationID
	}

	c.JSON(http.StatusOK, resp)
}

// NotificationResult получает исход доставки уведомления
// GET /api/notifications/:id
func (h *AppointmentHandler) NotificationResult(c *gin.Context) {
	result, ok := h.appointments.NotificationResult(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// buildUpdateIntent собирает намерение из тела запроса
func buildUpdateIntent(req updateAppointmentRequest) (model.UpdateIntent, error) {
	switch {
	case req.Status != nil && model.AppointmentStatus(*req.Status) == model.AppointmentStatusRejected:
		return model.RejectIntent{TeacherAssignment: req.TeacherAssignment}, nil

	case req.Status != nil && model.AppointmentStatus(*req.Status) == model.AppointmentStatusAssigned:
		return model.AssignStatusIntent{TeacherAssignment: req.TeacherAssignment}, nil

	case req.Status != nil && req.TeacherID == nil && req.Responded == nil:
		return model.PlainStatusIntent{Status: model.AppointmentStatus(*req.Status)}, nil

	case req.TeacherID != nil:
		var status model.AppointmentStatus
		if req.Status != nil {
			status = model.AppointmentStatus(*req.Status)
		}
		return model.AssignTeacherIntent{
			TeacherID:         *req.TeacherID,
			Status:            status,
			TeacherAssignment: req.TeacherAssignment,
		}, nil

	case req.Responded != nil:
		return model.RespondedIntent{Responded: *req.Responded}, nil

	default:
		patch := model.FieldPatchIntent{TeacherAssignment: req.TeacherAssignment}
		if req.StartTime != nil {
			startTime, err := parseTime(*req.StartTime)
			if err != nil {
				return nil, err
			}
			patch.StartTime = &startTime
		}
		return patch, nil
	}
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.NewValidation("invalid id '%s'", c.Param("id"))
	}
	return id, nil
}

func todayParam(c *gin.Context) bool {
	v := c.Query("today")
	return v == "1" || v == "true"
}

// parseTime принимает RFC3339 или локальное время без смещения,
// которое трактуется в фиксированном окне UTC+3
func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", value, service.FixedZone); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.NewValidation("invalid time '%s'", value)
}
