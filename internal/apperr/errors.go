package apperr

import (
	"errors"
	"fmt"
)

// Общие ошибки доменного слоя
var (
	ErrNotFound         = errors.New("appointment not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateBooking = errors.New("duplicate booking")
	ErrUserExists       = errors.New("user already exists")
	ErrNoPermission     = errors.New("no permission")
	ErrRejectedLocked   = errors.New("appointment is rejected and cannot be updated")
	ErrBadCredentials   = errors.New("invalid username or password")
)

// InvalidStatusError возвращается при попытке перевести запись
// в статус, которого нет в списке допустимых значений.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("status '%s' is not defined", e.Status)
}

// NewInvalidStatus создаёт ошибку неизвестного статуса
func NewInvalidStatus(status string) error {
	return &InvalidStatusError{Status: status}
}

// ValidationError возвращается при некорректной форме входных данных
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidation создаёт ошибку валидации с пользовательским сообщением
func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ErrorMessage возвращает пользовательское сообщение для ошибки.
// Ошибки хранилища сюда не попадают: для них наружу уходит
// общий текст без внутренних деталей.
func ErrorMessage(err error) string {
	var invalidStatus *InvalidStatusError
	var validation *ValidationError

	switch {
	case errors.As(err, &invalidStatus):
		return invalidStatus.Error()
	case errors.As(err, &validation):
		return validation.Error()
	case errors.Is(err, ErrDuplicateBooking):
		return "you already have a booking at this time"
	case errors.Is(err, ErrNotFound):
		return "appointment not found"
	case errors.Is(err, ErrUserNotFound):
		return "user not found"
	case errors.Is(err, ErrUserExists):
		return "user with this username already exists"
	case errors.Is(err, ErrNoPermission):
		return "you have no permission to perform this action"
	case errors.Is(err, ErrRejectedLocked):
		return "rejected appointment cannot be updated"
	case errors.Is(err, ErrBadCredentials):
		return "invalid username or password"
	default:
		return "internal server error"
	}
}
