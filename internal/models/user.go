// Package models содержит доменную модель пользователя сервиса аккаунтов:
// учётные данные, хэш пароля, статус жизненного цикла и временные метки.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Статусы жизненного цикла пользователя.
const (
	// StatusNew — пользователь зарегистрирован, но ещё не подтвердил email.
	StatusNew = "new"
	// StatusActive — пользователь подтвердил регистрацию.
	StatusActive = "active"
	// StatusDeleted — пользователь удалён (мягкое удаление, обратимо).
	StatusDeleted = "deleted"
)

// User представляет зарегистрированного пользователя системы.
//
// Инвариант: DeletionDate заполнена тогда и только тогда,
// когда Status == StatusDeleted.
type User struct {
	ID               int64      // Уникальный идентификатор пользователя
	Email            string     // Электронная почта (уникальная, логин)
	Name             string     // Отображаемое имя
	PasswordHash     string     // Хэш пароля пользователя
	Status           string     // Статус: new, active или deleted
	RegistrationDate time.Time  // Дата регистрации в UTC, выставляется один раз
	DeletionDate     *time.Time // Дата мягкого удаления, nil если не удалён
}

// IsDeleted сообщает, находится ли пользователь в статусе deleted.
func (u *User) IsDeleted() bool {
	return u.Status == StatusDeleted
}
