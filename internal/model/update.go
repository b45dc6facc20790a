package model

import (
	"time"

	"lessonbook/internal/apperr"
)

// UpdateIntent описывает ровно одно намерение изменения записи.
// Каждый вызов маршрута формирует один intent, поэтому порядок
// разбора сигналов фиксируется на этапе конструирования, а не
// угадывается по набору заполненных полей.
type UpdateIntent interface {
	// Apply переводит запись в новое состояние. Запись меняется
	// только если ошибки нет.
	Apply(a *Appointment) error
}

// RejectIntent отклоняет запись из любого состояния.
type RejectIntent struct {
	TeacherAssignment *string
}

func (i RejectIntent) Apply(a *Appointment) error {
	a.Status = AppointmentStatusRejected
	if i.TeacherAssignment != nil {
		a.TeacherAssignment = i.TeacherAssignment
	}
	return nil
}

// AssignStatusIntent переводит запись в статус assigned.
// Используется и менеджером при назначении, и учителем при
// самостоятельном принятии занятия.
type AssignStatusIntent struct {
	TeacherAssignment *string
}

func (i AssignStatusIntent) Apply(a *Appointment) error {
	a.Status = AppointmentStatusAssigned
	if i.TeacherAssignment != nil {
		a.TeacherAssignment = i.TeacherAssignment
	}
	return nil
}

// PlainStatusIntent выставляет статус напрямую. Неизвестное
// значение отклоняется, запись остаётся без изменений.
type PlainStatusIntent struct {
	Status AppointmentStatus
}

func (i PlainStatusIntent) Apply(a *Appointment) error {
	if !i.Status.IsValid() {
		return apperr.NewInvalidStatus(string(i.Status))
	}
	a.Status = i.Status
	return nil
}

// AssignTeacherIntent назначает учителя на запись. Статус берётся
// из запроса, по умолчанию requested.
type AssignTeacherIntent struct {
	TeacherID         int64
	Status            AppointmentStatus // Пустое значение означает requested
	TeacherAssignment *string
}

func (i AssignTeacherIntent) Apply(a *Appointment) error {
	status := i.Status
	if status == "" {
		status = AppointmentStatusRequested
	}
	if !status.IsValid() {
		return apperr.NewInvalidStatus(string(i.Status))
	}
	teacherID := i.TeacherID
	a.TeacherID = &teacherID
	a.Status = status
	if i.TeacherAssignment != nil {
		a.TeacherAssignment = i.TeacherAssignment
	}
	return nil
}

// RespondedIntent отметка учителя о созвоне со студентом:
// true переводит запись в responded, false возвращает в assigned.
type RespondedIntent struct {
	Responded bool
}

func (i RespondedIntent) Apply(a *Appointment) error {
	if i.Responded {
		a.Status = AppointmentStatusResponded
	} else {
		a.Status = AppointmentStatusAssigned
	}
	return nil
}

// FieldPatchIntent правка полей без смены статуса.
type FieldPatchIntent struct {
	StartTime         *time.Time
	TeacherAssignment *string
}

func (i FieldPatchIntent) Apply(a *Appointment) error {
	if i.StartTime != nil {
		a.StartTime = *i.StartTime
	}
	if i.TeacherAssignment != nil {
		a.TeacherAssignment = i.TeacherAssignment
	}
	return nil
}
