package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
)

type AssignmentService struct {
	assignments IndependentAssignmentRepo
	users       UserRepo
	logger      *zap.Logger
}

func NewAssignmentService(assignments IndependentAssignmentRepo, users UserRepo, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		users:       users,
		logger:      logger,
	}
}

// Create сохраняет занятие, проведённое без предварительной записи
func (s *AssignmentService) Create(ctx context.Context, studentID int64, completionTime time.Time, assignment, notes string) (*model.IndependentAssignment, error) {
	if assignment == "" {
		return nil, apperr.NewValidation("assignment text is required")
	}

	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, apperr.ErrUserNotFound
	}

	ia := &model.IndependentAssignment{
		StudentID:      studentID,
		CompletionTime: completionTime,
		Assignment:     assignment,
		Notes:          notes,
	}

	if err := s.assignments.Create(ctx, ia); err != nil {
		return nil, err
	}

	s.logger.Info("Independent assignment created",
		zap.Int64("assignment_id", ia.ID),
		zap.Int64("student_id", studentID),
	)

	return ia, nil
}

// ListByStudent получает самостоятельные занятия студента
func (s *AssignmentService) ListByStudent(ctx context.Context, studentID int64) ([]*model.IndependentAssignment, error) {
	return s.assignments.ListByStudent(ctx, studentID)
}
