package model

import "time"

// Availability окно доступности учителя. Создаётся учителем,
// удаляется явно, пересекающиеся окна не склеиваются.
type Availability struct {
	ID        int64     `json:"id"`
	TeacherID int64     `json:"teacher_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`

	Teacher *User `json:"teacher,omitempty"`
}
