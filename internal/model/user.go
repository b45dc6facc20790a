package model

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student" // Студент, записывается на занятия
	RoleTeacher UserRole = "teacher" // Учитель, принимает и отклоняет записи
	RoleManager UserRole = "manager" // Менеджер, назначает учителей
)

// IsValid проверяет, что роль входит в список известных значений
func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"` // Уникален в пределах секции
	Password         string    `json:"-"`        // Формат hex(hash).hex(salt)
	Role             UserRole  `json:"role"`
	Section          string    `json:"section"`
	TelegramChatID   *int64    `json:"telegram_chat_id,omitempty"` // Стабильный числовой идентификатор
	TelegramUsername string    `json:"telegram_username,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
