package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
	"lessonbook/internal/notify"
)

type AppointmentService struct {
	appointments   AppointmentRepo
	users          UserRepo
	dispatcher     *notify.Dispatcher // nil, если уведомления выключены
	baseURL        string
	reopenRejected bool
	logger         *zap.Logger
}

func NewAppointmentService(
	appointments AppointmentRepo,
	users UserRepo,
	dispatcher *notify.Dispatcher,
	baseURL string,
	reopenRejected bool,
	logger *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments:   appointments,
		users:          users,
		dispatcher:     dispatcher,
		baseURL:        baseURL,
		reopenRejected: reopenRejected,
		logger:         logger,
	}
}

// Create создаёт запись студента на занятие.
// Две записи одного студента на одно и то же время не допускаются.
func (s *AppointmentService) Create(ctx context.Context, studentID int64, startTime time.Time) (*model.Appointment, error) {
	exists, err := s.appointments.ExistsAtTime(ctx, studentID, startTime)
	if err != nil {
		return nil, fmt.Errorf("check duplicate booking: %w", err)
	}
	if exists {
		return nil, apperr.ErrDuplicateBooking
	}

	appt := &model.Appointment{
		StudentID: studentID,
		StartTime: startTime,
		Status:    model.AppointmentStatusPending,
	}

	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.logger.Info("Appointment created",
		zap.Int64("appointment_id", appt.ID),
		zap.Int64("student_id", studentID),
		zap.Time("start_time", startTime),
	)

	return appt, nil
}

// Update применяет одно намерение изменения к записи.
// Либо сохраняются все поля нового состояния, либо ничего.
// Вторым значением возвращается ID задачи уведомления, если
// назначение учителя его породило.
func (s *AppointmentService) Update(ctx context.Context, id int64, intent model.UpdateIntent) (*model.Appointment, string, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil {
		return nil, "", apperr.ErrNotFound
	}

	if !s.reopenRejected && appt.Status == model.AppointmentStatusRejected {
		if _, ok := intent.(model.FieldPatchIntent); !ok {
			return nil, "", apperr.ErrRejectedLocked
		}
	}

	if err := intent.Apply(appt); err != nil {
		return nil, "", err
	}

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, "", err
	}

	s.logger.Info("Appointment updated",
		zap.Int64("appointment_id", appt.ID),
		zap.String("status", string(appt.Status)),
	)

	notificationID := ""
	if assign, ok := intent.(model.AssignTeacherIntent); ok {
		notificationID = s.notifyTeacherAssigned(ctx, appt, assign.TeacherID)
	}

	return appt, notificationID, nil
}

// GetByID получает запись по ID
func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, apperr.ErrNotFound
	}
	return appt, nil
}

// ListByStudent получает все записи студента, свежие первыми
func (s *AppointmentService) ListByStudent(ctx context.Context, studentID int64) ([]*model.Appointment, error) {
	return s.appointments.ListByStudent(ctx, studentID)
}

// ListByTeacher получает записи учителя, при todayOnly только за
// текущие сутки в окне UTC+3
func (s *AppointmentService) ListByTeacher(ctx context.Context, teacherID int64, todayOnly bool) ([]*model.Appointment, error) {
	if todayOnly {
		from, to := TodayWindow(time.Now())
		return s.appointments.ListByTeacherBetween(ctx, teacherID, from, to)
	}
	return s.appointments.ListByTeacher(ctx, teacherID)
}

// ListAll получает все записи для менеджера
func (s *AppointmentService) ListAll(ctx context.Context, todayOnly bool) ([]*model.Appointment, error) {
	if todayOnly {
		from, to := TodayWindow(time.Now())
		return s.appointments.ListAllBetween(ctx, from, to)
	}
	return s.appointments.ListAll(ctx)
}

// NotificationResult возвращает исход доставки уведомления
func (s *AppointmentService) NotificationResult(id string) (notify.TaskResult, bool) {
	if s.dispatcher == nil {
		return notify.TaskResult{}, false
	}
	return s.dispatcher.Result(id)
}

// notifyTeacherAssigned отправляет учителю уведомление о назначении.
// Доставка best-effort: любые проблемы логируются и не влияют на
// результат обновления записи.
func (s *AppointmentService) notifyTeacherAssigned(ctx context.Context, appt *model.Appointment, teacherID int64) string {
	if s.dispatcher == nil {
		return ""
	}

	teacher, err := s.users.GetByID(ctx, teacherID)
	if err != nil || teacher == nil {
		s.logger.Warn("Assigned teacher not found, notification skipped",
			zap.Int64("appointment_id", appt.ID),
			zap.Int64("teacher_id", teacherID),
			zap.Error(err),
		)
		return ""
	}

	studentName := fmt.Sprintf("#%d", appt.StudentID)
	if student, err := s.users.GetByID(ctx, appt.StudentID); err == nil && student != nil {
		studentName = student.Username
	}

	text := fmt.Sprintf(
		"📚 Вам назначено занятие\n\n"+
			"👤 Студент: %s\n"+
			"🕐 Время: %s",
		studentName,
		appt.StartTime.In(FixedZone).Format("02.01.2006 15:04"),
	)

	actionURL := ""
	if s.baseURL != "" {
		actionURL = fmt.Sprintf("%s/appointments/%d", s.baseURL, appt.ID)
	}

	target := notify.Target{Username: teacher.TelegramUsername}
	if teacher.TelegramChatID != nil {
		target.ChatID = *teacher.TelegramChatID
	}

	taskID := s.dispatcher.Dispatch(target, text, actionURL)

	s.logger.Info("Teacher notification dispatched",
		zap.Int64("appointment_id", appt.ID),
		zap.Int64("teacher_id", teacherID),
		zap.String("task_id", taskID),
	)

	return taskID
}
