package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lessonbook/internal/auth"
	"lessonbook/internal/model"
)

// Handlers все HTTP-обработчики приложения
type Handlers struct {
	Auth           *AuthHandler
	Appointments   *AppointmentHandler
	Availabilities *AvailabilityHandler
	Questionnaires *QuestionnaireHandler
	Assignments    *AssignmentHandler
}

// NewRouter собирает маршруты с проверкой токена и ролей
func NewRouter(env string, h Handlers, tokens *auth.TokenManager, logger *zap.Logger) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	api := r.Group("/api")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	authorized := api.Group("", JWTAuth(tokens))

	authorized.GET("/me", h.Auth.Me)

	authorized.POST("/appointments", RequireRole(model.RoleStudent), h.Appointments.Create)
	authorized.GET("/appointments/my", RequireRole(model.RoleStudent), h.Appointments.ListMy)
	authorized.GET("/appointments/teacher", RequireRole(model.RoleTeacher), h.Appointments.ListForTeacher)
	authorized.GET("/appointments", RequireRole(model.RoleManager), h.Appointments.ListAll)
	authorized.GET("/appointments/:id", h.Appointments.Get)
	authorized.PATCH("/appointments/:id", RequireRole(model.RoleTeacher, model.RoleManager), h.Appointments.Update)

	authorized.POST("/appointments/:id/questionnaire", RequireRole(model.RoleTeacher), h.Questionnaires.Submit)
	authorized.GET("/appointments/:id/questionnaire", RequireRole(model.RoleTeacher, model.RoleManager), h.Questionnaires.List)

	authorized.GET("/notifications/:id", RequireRole(model.RoleTeacher, model.RoleManager), h.Appointments.NotificationResult)

	authorized.POST("/availabilities", RequireRole(model.RoleTeacher), h.Availabilities.Create)
	authorized.GET("/availabilities", h.Availabilities.List)
	authorized.DELETE("/availabilities/:id", RequireRole(model.RoleTeacher), h.Availabilities.Delete)

	authorized.POST("/assignments", RequireRole(model.RoleTeacher), h.Assignments.Create)
	authorized.GET("/assignments", RequireRole(model.RoleTeacher, model.RoleManager), h.Assignments.ListByStudent)

	return r
}
