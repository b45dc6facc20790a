package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lessonbook/internal/apperr"
)

// respondError переводит доменную ошибку в HTTP-ответ.
// Ошибки хранилища наружу не раскрываются: уходит общий текст.
func respondError(c *gin.Context, err error) {
	c.JSON(statusCode(err), gin.H{"error": apperr.ErrorMessage(err)})
}

func statusCode(err error) int {
	var invalidStatus *apperr.InvalidStatusError
	var validation *apperr.ValidationError

	switch {
	case errors.As(err, &invalidStatus), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNoPermission):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrDuplicateBooking),
		errors.Is(err, apperr.ErrUserExists),
		errors.Is(err, apperr.ErrRejectedLocked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
