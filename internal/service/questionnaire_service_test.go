package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
)

func TestQuestionnaireSubmitForcesDone(t *testing.T) {
	statuses := []model.AppointmentStatus{
		model.AppointmentStatusPending,
		model.AppointmentStatusRequested,
		model.AppointmentStatusAssigned,
		model.AppointmentStatusResponded,
		model.AppointmentStatusRejected,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			appointments := newMockAppointmentRepo()
			questionnaires := newMockQuestionnaireRepo()
			svc := NewQuestionnaireService(questionnaires, appointments, zap.NewNop())
			ctx := context.Background()

			appt := &model.Appointment{StudentID: 1, StartTime: time.Now(), Status: status}
			require.NoError(t, appointments.Create(ctx, appt))

			qr, err := svc.Submit(ctx, appt.ID, QuestionnaireInput{
				Covered:  "Гаммы до мажор",
				Progress: "Уверенно",
			})
			require.NoError(t, err)
			assert.NotZero(t, qr.ID)

			// Анкета закрывает запись независимо от прежнего статуса
			stored, err := appointments.GetByID(ctx, appt.ID)
			require.NoError(t, err)
			assert.Equal(t, model.AppointmentStatusDone, stored.Status)

			// Анкета доступна по ID записи
			responses, err := svc.ListByAppointment(ctx, appt.ID)
			require.NoError(t, err)
			require.Len(t, responses, 1)
			assert.Equal(t, "Гаммы до мажор", responses[0].Covered)
		})
	}
}

func TestQuestionnaireSubmitUnknownAppointment(t *testing.T) {
	svc := NewQuestionnaireService(newMockQuestionnaireRepo(), newMockAppointmentRepo(), zap.NewNop())

	_, err := svc.Submit(context.Background(), 42, QuestionnaireInput{Covered: "x", Progress: "y"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuestionnaireSubmitPartialFailureSurfaced(t *testing.T) {
	appointments := newMockAppointmentRepo()
	questionnaires := newMockQuestionnaireRepo()
	svc := NewQuestionnaireService(questionnaires, appointments, zap.NewNop())
	ctx := context.Background()

	appt := &model.Appointment{StudentID: 1, StartTime: time.Now(), Status: model.AppointmentStatusResponded}
	require.NoError(t, appointments.Create(ctx, appt))

	appointments.updateErr = errors.New("connection reset")

	qr, err := svc.Submit(ctx, appt.ID, QuestionnaireInput{Covered: "x", Progress: "y"})

	// Ошибка второго шага уходит наверх, анкета при этом сохранена
	require.Error(t, err)
	assert.Contains(t, err.Error(), "questionnaire saved")
	require.NotNil(t, qr)

	responses, listErr := svc.ListByAppointment(ctx, appt.ID)
	require.NoError(t, listErr)
	assert.Len(t, responses, 1)

	stored, getErr := appointments.GetByID(ctx, appt.ID)
	require.NoError(t, getErr)
	assert.Equal(t, model.AppointmentStatusResponded, stored.Status)
}

// Полный путь записи: создание, назначение, созвон, анкета
func TestAppointmentLifecycleScenario(t *testing.T) {
	f := newAppointmentFixture(t, true)
	questionnaires := newMockQuestionnaireRepo()
	qsvc := NewQuestionnaireService(questionnaires, f.appointments, zap.NewNop())
	ctx := context.Background()

	seedUser(t, f.users, "ivanov", model.RoleStudent, nil)
	teacher := seedUser(t, f.users, "petrova", model.RoleTeacher, nil)

	appt, err := f.svc.Create(ctx, 1, time.Date(2024, 1, 10, 10, 0, 0, 0, FixedZone))
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, appt.Status)

	_, _, err = f.svc.Update(ctx, appt.ID, model.AssignTeacherIntent{TeacherID: teacher.ID})
	require.NoError(t, err)
	current, err := f.svc.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusRequested, current.Status)

	_, _, err = f.svc.Update(ctx, appt.ID, model.RespondedIntent{Responded: true})
	require.NoError(t, err)
	current, err = f.svc.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusResponded, current.Status)

	_, err = qsvc.Submit(ctx, appt.ID, QuestionnaireInput{Covered: "Гаммы", Progress: "Хорошо"})
	require.NoError(t, err)
	current, err = f.svc.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusDone, current.Status)
}
