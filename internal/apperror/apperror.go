// Package apperror определяет доменные ошибки сервиса аккаунтов.
//
// Каждая ошибка несёт машинный идентификатор сообщения и рекомендуемый
// HTTP-статус, чтобы граничный слой отображал ошибку в ответ
// детерминированно, не раскрывая внутренних деталей.
package apperror

import (
	"errors"
	"net/http"
)

// Error — доменная ошибка с идентификатором сообщения и HTTP-статусом.
type Error struct {
	MessageID string // Машинный идентификатор сообщения
	Message   string // Текст для пользователя
	Status    int    // Рекомендуемый HTTP-статус
}

// Error возвращает текст ошибки.
func (e *Error) Error() string {
	return e.Message
}

// Ошибки жизненного цикла аккаунта.
var (
	// ErrEmailAlreadyExists — регистрация с уже занятым email.
	ErrEmailAlreadyExists = &Error{
		MessageID: "EMAIL_ALREADY_EXISTS",
		Message:   "a user with this email already exists",
		Status:    http.StatusConflict,
	}
	// ErrUserNotAuthenticated — команда требует аутентифицированного пользователя.
	ErrUserNotAuthenticated = &Error{
		MessageID: "USER_NOT_AUTHENTICATED",
		Message:   "user is not authenticated",
		Status:    http.StatusUnauthorized,
	}
	// ErrInvalidToken — токен не распарсился, подпись не сошлась
	// или отсутствует обязательный claim.
	ErrInvalidToken = &Error{
		MessageID: "INVALID_TOKEN",
		Message:   "token is invalid",
		Status:    http.StatusBadRequest,
	}
	// ErrTokenExpired — прошло не меньше сконфигурированного окна дней.
	ErrTokenExpired = &Error{
		MessageID: "TOKEN_EXPIRED",
		Message:   "token has expired",
		Status:    http.StatusGone,
	}
	// ErrUserAlreadyConfirmed — подтверждение уже активного аккаунта.
	ErrUserAlreadyConfirmed = &Error{
		MessageID: "USER_ALREADY_CONFIRMED",
		Message:   "user is already confirmed",
		Status:    http.StatusGone,
	}
	// ErrIncorrectPassword — пароль не совпал с хэшем.
	ErrIncorrectPassword = &Error{
		MessageID: "INCORRECT_PASSWORD",
		Message:   "password is incorrect",
		Status:    http.StatusForbidden,
	}
	// ErrPasswordSameAsOld — новый пароль текстуально равен старому.
	ErrPasswordSameAsOld = &Error{
		MessageID: "PASSWORD_SAME_AS_OLD",
		Message:   "new password is the same as the old one",
		Status:    http.StatusForbidden,
	}
	// ErrIncorrectEmail — пользователь с таким email не найден.
	ErrIncorrectEmail = &Error{
		MessageID: "INCORRECT_EMAIL",
		Message:   "no user found for this email",
		Status:    http.StatusNotFound,
	}
	// ErrTooManyResetRequests — повторный запрос сброса пароля раньше кулдауна.
	ErrTooManyResetRequests = &Error{
		MessageID: "TOO_MANY_RESET_REQUESTS",
		Message:   "password reset was already requested recently",
		Status:    http.StatusTooManyRequests,
	}
)

// From извлекает доменную ошибку из цепочки обёрток.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf возвращает HTTP-статус для ошибки,
// 500 — если ошибка не доменная.
func StatusOf(err error) int {
	if appErr, ok := From(err); ok {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
