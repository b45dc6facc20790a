package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lessonbook/internal/model"
)

type IndependentAssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewIndependentAssignmentRepository(pool *pgxpool.Pool) *IndependentAssignmentRepository {
	return &IndependentAssignmentRepository{pool: pool}
}

// Create сохраняет запись о занятии без предварительной записи
func (r *IndependentAssignmentRepository) Create(ctx context.Context, ia *model.IndependentAssignment) error {
	query := `
		INSERT INTO independent_assignments (student_id, completion_time, assignment, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		ia.StudentID,
		ia.CompletionTime,
		ia.Assignment,
		ia.Notes,
	).Scan(&ia.ID, &ia.CreatedAt)

	if err != nil {
		return fmt.Errorf("create independent assignment: %w", err)
	}

	return nil
}

// ListByStudent получает все самостоятельные занятия студента
func (r *IndependentAssignmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*model.IndependentAssignment, error) {
	query := `
		SELECT id, student_id, completion_time, assignment, notes, created_at
		FROM independent_assignments
		WHERE student_id = $1
		ORDER BY completion_time DESC, id
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list independent assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*model.IndependentAssignment
	for rows.Next() {
		var ia model.IndependentAssignment
		err := rows.Scan(
			&ia.ID,
			&ia.StudentID,
			&ia.CompletionTime,
			&ia.Assignment,
			&ia.Notes,
			&ia.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan independent assignment: %w", err)
		}
		assignments = append(assignments, &ia)
	}

	return assignments, nil
}
