package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
)

type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

// Create создаёт окно доступности учителя
func (r *AvailabilityRepository) Create(ctx context.Context, av *model.Availability) error {
	query := `
		INSERT INTO availabilities (teacher_id, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, av.TeacherID, av.StartTime, av.EndTime).
		Scan(&av.ID, &av.CreatedAt)
	if err != nil {
		return fmt.Errorf("create availability: %w", err)
	}

	return nil
}

// GetByID получает окно доступности по ID
func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*model.Availability, error) {
	query := `
		SELECT id, teacher_id, start_time, end_time, created_at
		FROM availabilities
		WHERE id = $1
	`

	var av model.Availability
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&av.ID,
		&av.TeacherID,
		&av.StartTime,
		&av.EndTime,
		&av.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability by id: %w", err)
	}

	return &av, nil
}

// Delete удаляет окно доступности
func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM availabilities WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

// ListByTeacher получает все окна доступности учителя
func (r *AvailabilityRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*model.Availability, error) {
	query := `
		SELECT id, teacher_id, start_time, end_time, created_at
		FROM availabilities
		WHERE teacher_id = $1
		ORDER BY start_time DESC, id
	`

	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list availabilities by teacher: %w", err)
	}
	defer rows.Close()

	return scanAvailabilities(rows)
}

// ListBetween получает окна доступности всех учителей в интервале [from, to)
func (r *AvailabilityRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*model.Availability, error) {
	query := `
		SELECT id, teacher_id, start_time, end_time, created_at
		FROM availabilities
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time DESC, id
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list availabilities between: %w", err)
	}
	defer rows.Close()

	return scanAvailabilities(rows)
}

func scanAvailabilities(rows pgx.Rows) ([]*model.Availability, error) {
	var availabilities []*model.Availability
	for rows.Next() {
		var av model.Availability
		err := rows.Scan(
			&av.ID,
			&av.TeacherID,
			&av.StartTime,
			&av.EndTime,
			&av.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		availabilities = append(availabilities, &av)
	}

	return availabilities, nil
}
