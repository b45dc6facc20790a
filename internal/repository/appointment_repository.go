package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `id, student_id, teacher_id, start_time, status, teacher_assignment, created_at`

// Create создаёт новую запись на занятие.
// Уникальный индекс (student_id, start_time) страхует проверку
// дубликата между чтением и вставкой.
func (r *AppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	query := `
		INSERT INTO appointments (student_id, teacher_id, start_time, status, teacher_assignment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		appt.StudentID,
		appt.TeacherID,
		appt.StartTime,
		appt.Status,
		appt.TeacherAssignment,
	).Scan(&appt.ID, &appt.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.ErrDuplicateBooking
		}
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

// GetByID получает запись по ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appt, err := scanAppointmentRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return appt, nil
}

// Update сохраняет новое состояние записи целиком: либо все поля,
// либо ничего.
func (r *AppointmentRepository) Update(ctx context.Context, appt *model.Appointment) error {
	query := `
		UPDATE appointments
		SET teacher_id = $1, start_time = $2, status = $3, teacher_assignment = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		appt.TeacherID,
		appt.StartTime,
		appt.Status,
		appt.TeacherAssignment,
		appt.ID,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

// ExistsAtTime проверяет, есть ли у студента запись на это же время
func (r *AppointmentRepository) ExistsAtTime(ctx context.Context, studentID int64, startTime time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM appointments WHERE student_id = $1 AND start_time = $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, studentID, startTime).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check appointment exists: %w", err)
	}

	return exists, nil
}

// ListByStudent получает все записи студента, свежие первыми
func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE student_id = $1
		ORDER BY start_time DESC, id
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by student: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByTeacher получает все записи учителя, свежие первыми
func (r *AppointmentRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE teacher_id = $1
		ORDER BY start_time DESC, id
	`

	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by teacher: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByTeacherBetween получает записи учителя в интервале [from, to)
func (r *AppointmentRepository) ListByTeacherBetween(ctx context.Context, teacherID int64, from, to time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE teacher_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time DESC, id
	`

	rows, err := r.pool.Query(ctx, query, teacherID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list appointments by teacher between: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListAll получает все записи, свежие первыми
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY start_time DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListAllBetween получает все записи в интервале [from, to)
func (r *AppointmentRepository) ListAllBetween(ctx context.Context, from, to time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time DESC, id
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list appointments between: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func scanAppointmentRow(row pgx.Row) (*model.Appointment, error) {
	var appt model.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.StudentID,
		&appt.TeacherID,
		&appt.StartTime,
		&appt.Status,
		&appt.TeacherAssignment,
		&appt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func scanAppointments(rows pgx.Rows) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	for rows.Next() {
		appt, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, appt)
	}

	return appointments, nil
}
