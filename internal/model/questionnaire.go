package model

import "time"

// QuestionnaireResponse анкета учителя по итогам занятия.
// Практически одна на запись, хотя схема допускает несколько.
type QuestionnaireResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointment_id"`
	Covered       string    `json:"covered"`      // Что разобрали на занятии
	Progress      string    `json:"progress"`     // Как студент справлялся
	Difficulties  string    `json:"difficulties"` // Что вызвало затруднения
	NextSteps     string    `json:"next_steps"`   // Рекомендации на следующее занятие
	SubmittedAt   time.Time `json:"submitted_at"`
}
