package model

import "time"

// IndependentAssignment запись о занятии, проведённом без
// предварительной записи студента.
type IndependentAssignment struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"student_id"`
	CompletionTime time.Time `json:"completion_time"`
	Assignment     string    `json:"assignment"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`

	Student *User `json:"student,omitempty"`
}
