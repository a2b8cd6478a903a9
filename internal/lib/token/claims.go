// Package token реализует выпуск и проверку подписанных токенов для писем:
// подтверждения регистрации и сброса пароля.
//
// Токены не хранятся на сервере: валидность целиком определяется подписью,
// временем выпуска и текущим состоянием аккаунта. Срок жизни не зашивается
// в полезную нагрузку — вызывающая сторона сама считает количество
// прошедших дней от момента выпуска и сравнивает с окном своей операции.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Назначения токенов. У каждого назначения своё окно действия
// и свой набор обязательных claim-полей.
const (
	// PurposeConfirmation — токен подтверждения регистрации.
	PurposeConfirmation = "confirm_registration"
	// PurposeReset — токен сброса пароля.
	PurposeReset = "reset_password"
)

// Claims — закрытый типизированный набор полей токена.
// Никаких динамических claims-мешков: всё декодируется в структуру.
type Claims struct {
	Purpose string `json:"purpose"` // Назначение токена
	UserID  int64  `json:"user_id"` // Идентификатор аккаунта, для которого выпущен токен
	// RegistrationDate привязывает токен подтверждения к снимку аккаунта,
	// для которого он был выпущен. Для токена сброса пароля отсутствует.
	RegistrationDate     *jwt.NumericDate `json:"registration_date,omitempty"`
	jwt.RegisteredClaims                  // Стандартные claims (IssuedAt и пр.)
}

// ExpiredAfterDays сообщает, прошло ли с момента выпуска токена
// не меньше windowDays суток. Граница строгая в смысле спецификации:
// ровно windowDays — уже просрочен, windowDays-1 — ещё нет.
// Все вычисления в UTC, чтобы не ловить ошибки часовых поясов.
func (c *Claims) ExpiredAfterDays(now time.Time, windowDays int) bool {
	diff := now.UTC().Sub(c.IssuedAt.Time.UTC())
	if diff < 0 {
		diff = -diff
	}
	elapsedDays := int(diff / (24 * time.Hour))
	return elapsedDays >= windowDays
}
