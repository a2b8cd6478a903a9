package models

import "time"

// UserDTO — представление пользователя для HTTP-ответов.
// Хэш пароля наружу не отдаётся никогда.
type UserDTO struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	RegistrationDate time.Time  `json:"registration_date"`
	DeletionDate     *time.Time `json:"deletion_date,omitempty"`
}

// ToDTO конвертирует доменного пользователя в представление для ответа.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Status:           u.Status,
		RegistrationDate: u.RegistrationDate,
		DeletionDate:     u.DeletionDate,
	}
}
