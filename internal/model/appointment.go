package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"   // Создана студентом, учитель не назначен
	AppointmentStatusRequested AppointmentStatus = "requested" // Менеджер назначил учителя, ждём его ответа
	AppointmentStatusAssigned  AppointmentStatus = "assigned"  // Учитель принял занятие
	AppointmentStatusResponded AppointmentStatus = "responded" // Учитель отчитался о созвоне
	AppointmentStatusDone      AppointmentStatus = "done"      // Занятие завершено, анкета сдана
	AppointmentStatusRejected  AppointmentStatus = "rejected"  // Отклонена учителем
)

// IsValid проверяет, что статус входит в список известных значений
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusRequested, AppointmentStatusAssigned,
		AppointmentStatusResponded, AppointmentStatusDone, AppointmentStatusRejected:
		return true
	}
	return false
}

type Appointment struct {
	ID                int64             `json:"id"`
	StudentID         int64             `json:"student_id"`
	TeacherID         *int64            `json:"teacher_id"` // nil, пока менеджер не назначил учителя
	StartTime         time.Time         `json:"start_time"`
	Status            AppointmentStatus `json:"status"`
	TeacherAssignment *string           `json:"teacher_assignment"` // Текстовое описание задания для учителя
	CreatedAt         time.Time         `json:"created_at"`

	// Дополнительные поля для удобства (не из БД)
	Student *User `json:"student,omitempty"`
	Teacher *User `json:"teacher,omitempty"`
}
