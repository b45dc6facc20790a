package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lessonbook/internal/model"
)

type QuestionnaireRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionnaireRepository(pool *pgxpool.Pool) *QuestionnaireRepository {
	return &QuestionnaireRepository{pool: pool}
}

// Create сохраняет анкету по итогам занятия
func (r *QuestionnaireRepository) Create(ctx context.Context, qr *model.QuestionnaireResponse) error {
	query := `
		INSERT INTO questionnaire_responses (appointment_id, covered, progress, difficulties, next_steps)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		qr.AppointmentID,
		qr.Covered,
		qr.Progress,
		qr.Difficulties,
		qr.NextSteps,
	).Scan(&qr.ID, &qr.SubmittedAt)

	if err != nil {
		return fmt.Errorf("create questionnaire response: %w", err)
	}

	return nil
}

// ListByAppointment получает анкеты по ID записи
func (r *QuestionnaireRepository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*model.QuestionnaireResponse, error) {
	query := `
		SELECT id, appointment_id, covered, progress, difficulties, next_steps, submitted_at
		FROM questionnaire_responses
		WHERE appointment_id = $1
		ORDER BY submitted_at DESC, id
	`

	rows, err := r.pool.Query(ctx, query, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("list questionnaire responses: %w", err)
	}
	defer rows.Close()

	var responses []*model.QuestionnaireResponse
	for rows.Next() {
		var qr model.QuestionnaireResponse
		err := rows.Scan(
			&qr.ID,
			&qr.AppointmentID,
			&qr.Covered,
			&qr.Progress,
			&qr.Difficulties,
			&qr.NextSteps,
			&qr.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan questionnaire response: %w", err)
		}
		responses = append(responses, &qr)
	}

	return responses, nil
}
