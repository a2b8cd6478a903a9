package models

// Типы исходящих писем.
const (
	// EmailTypeConfirmRegistration — письмо со ссылкой подтверждения регистрации.
	EmailTypeConfirmRegistration = "confirm_registration"
	// EmailTypeResetPassword — письмо со ссылкой сброса пароля.
	EmailTypeResetPassword = "reset_password"
)

// EmailMessage — сообщение очереди нотификаций.
//
// Публикуется сервисом аккаунтов после фиксации изменения в базе
// и потребляется отправителем писем асинхронно.
type EmailMessage struct {
	ID      string `json:"id"`       // Уникальный идентификатор сообщения
	Type    string `json:"type"`     // Тип письма: confirm_registration или reset_password
	Email   string `json:"email"`    // Адрес получателя
	Name    string `json:"name"`     // Имя получателя для текста письма
	Token   string `json:"token"`    // Подписанный токен для ссылки в письме
	BaseURL string `json:"base_url"` // Базовый URL сервиса для построения ссылки
}
