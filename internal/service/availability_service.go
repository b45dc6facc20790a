package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
)

type AvailabilityService struct {
	availabilities AvailabilityRepo
	logger         *zap.Logger
}

func NewAvailabilityService(availabilities AvailabilityRepo, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		availabilities: availabilities,
		logger:         logger,
	}
}

// Create создаёт окно доступности учителя
func (s *AvailabilityService) Create(ctx context.Context, teacherID int64, startTime, endTime time.Time) (*model.Availability, error) {
	if !endTime.After(startTime) {
		return nil, apperr.NewValidation("end time must be after start time")
	}

	av := &model.Availability{
		TeacherID: teacherID,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if err := s.availabilities.Create(ctx, av); err != nil {
		return nil, err
	}

	s.logger.Info("Availability created",
		zap.Int64("availability_id", av.ID),
		zap.Int64("teacher_id", teacherID),
		zap.Time("start_time", startTime),
	)

	return av, nil
}

// Delete удаляет окно доступности. Удалять может только владелец.
func (s *AvailabilityService) Delete(ctx context.Context, id, callerID int64) error {
	av, err := s.availabilities.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get availability: %w", err)
	}
	if av == nil {
		return apperr.ErrNotFound
	}
	if av.TeacherID != callerID {
		return apperr.ErrNoPermission
	}

	if err := s.availabilities.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Availability deleted",
		zap.Int64("availability_id", id),
		zap.Int64("teacher_id", callerID),
	)

	return nil
}

// ListByTeacher получает окна доступности учителя
func (s *AvailabilityService) ListByTeacher(ctx context.Context, teacherID int64) ([]*model.Availability, error) {
	return s.availabilities.ListByTeacher(ctx, teacherID)
}

// ListToday получает окна доступности всех учителей на текущие
// сутки в окне UTC+3
func (s *AvailabilityService) ListToday(ctx context.Context) ([]*model.Availability, error) {
	from, to := TodayWindow(time.Now())
	return s.availabilities.ListBetween(ctx, from, to)
}
