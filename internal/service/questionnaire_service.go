package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
)

type QuestionnaireService struct {
	questionnaires QuestionnaireRepo
	appointments   AppointmentRepo
	logger         *zap.Logger
}

func NewQuestionnaireService(questionnaires QuestionnaireRepo, appointments AppointmentRepo, logger *zap.Logger) *QuestionnaireService {
	return &QuestionnaireService{
		questionnaires: questionnaires,
		appointments:   appointments,
		logger:         logger,
	}
}

type QuestionnaireInput struct {
	Covered      string
	Progress     string
	Difficulties string
	NextSteps    string
}

// Submit сохраняет анкету и вторым отдельным обновлением переводит
// запись в done независимо от её текущего статуса. Это два вызова,
// не транзакция: если обновление статуса не удалось, ошибка уходит
// наверх, а анкета остаётся сохранённой.
func (s *QuestionnaireService) Submit(ctx context.Context, appointmentID int64, in QuestionnaireInput) (*model.QuestionnaireResponse, error) {
	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil {
		return nil, apperr.ErrNotFound
	}

	qr := &model.QuestionnaireResponse{
		AppointmentID: appointmentID,
		Covered:       in.Covered,
		Progress:      in.Progress,
		Difficulties:  in.Difficulties,
		NextSteps:     in.NextSteps,
	}

	if err := s.questionnaires.Create(ctx, qr); err != nil {
		return nil, err
	}

	appt.Status = model.AppointmentStatusDone
	if err := s.appointments.Update(ctx, appt); err != nil {
		return qr, fmt.Errorf("questionnaire saved but appointment status update failed: %w", err)
	}

	s.logger.Info("Questionnaire submitted",
		zap.Int64("questionnaire_id", qr.ID),
		zap.Int64("appointment_id", appointmentID),
	)

	return qr, nil
}

// ListByAppointment получает анкеты по записи
func (s *QuestionnaireService) ListByAppointment(ctx context.Context, appointmentID int64) ([]*model.QuestionnaireResponse, error) {
	return s.questionnaires.ListByAppointment(ctx, appointmentID)
}
