package service

import (
	"context"
	"time"

	"lessonbook/internal/model"
)

// Интерфейсы хранилища, которыми пользуются сервисы.
// Реализации живут в internal/repository, в тестах подменяются
// in-memory моками.

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetBySectionAndUsername(ctx context.Context, section, username string) (*model.User, error)
}

type AppointmentRepo interface {
	Create(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	Update(ctx context.Context, appt *model.Appointment) error
	ExistsAtTime(ctx context.Context, studentID int64, startTime time.Time) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*model.Appointment, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*model.Appointment, error)
	ListByTeacherBetween(ctx context.Context, teacherID int64, from, to time.Time) ([]*model.Appointment, error)
	ListAll(ctx context.Context) ([]*model.Appointment, error)
	ListAllBetween(ctx context.Context, from, to time.Time) ([]*model.Appointment, error)
}

type AvailabilityRepo interface {
	Create(ctx context.Context, av *model.Availability) error
	GetByID(ctx context.Context, id int64) (*model.Availability, error)
	Delete(ctx context.Context, id int64) error
	ListByTeacher(ctx context.Context, teacherID int64) ([]*model.Availability, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*model.Availability, error)
}

type QuestionnaireRepo interface {
	Create(ctx context.Context, qr *model.QuestionnaireResponse) error
	ListByAppointment(ctx context.Context, appointmentID int64) ([]*model.QuestionnaireResponse, error)
}

type IndependentAssignmentRepo interface {
	Create(ctx context.Context, ia *model.IndependentAssignment) error
	ListByStudent(ctx context.Context, studentID int64) ([]*model.IndependentAssignment, error)
}
