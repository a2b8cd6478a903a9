// Package events реализует публикацию событий жизненного цикла аккаунта
// в очередь нотификаций. Токен для письма выпускается здесь же, в момент
// публикации, и уходит в сообщение вместе с адресом и базовым URL сервиса.
package events

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/account-service/internal/lib/token"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/rabbitmq"
)

// Publisher публикует события регистрации и сброса пароля
// в exchange нотификаций.
type Publisher struct {
	ch      *amqp.Channel
	tokens  token.Maker
	baseURL string
}

// NewPublisher создает новый экземпляр Publisher.
func NewPublisher(ch *amqp.Channel, tokens token.Maker, baseURL string) *Publisher {
	return &Publisher{
		ch:      ch,
		tokens:  tokens,
		baseURL: baseURL,
	}
}

// PublishRegistration публикует событие регистрации.
// Токен подтверждения привязывается к id и дате регистрации аккаунта.
func (p *Publisher) PublishRegistration(user *models.User) error {
	const op = "events.PublishRegistration"

	confirmToken, err := p.tokens.NewConfirmationToken(user.ID, user.RegistrationDate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := models.EmailMessage{
		ID:      uuid.NewString(),
		Type:    models.EmailTypeConfirmRegistration,
		Email:   user.Email,
		Name:    user.Name,
		Token:   confirmToken,
		BaseURL: p.baseURL,
	}
	if err := rabbitmq.PublishMessage(p.ch, rabbitmq.Exchange, rabbitmq.RoutingKeyConfirm, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PublishPasswordReset публикует событие запроса сброса пароля.
func (p *Publisher) PublishPasswordReset(user *models.User) error {
	const op = "events.PublishPasswordReset"

	resetToken, err := p.tokens.NewResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := models.EmailMessage{
		ID:      uuid.NewString(),
		Type:    models.EmailTypeResetPassword,
		Email:   user.Email,
		Name:    user.Name,
		Token:   resetToken,
		BaseURL: p.baseURL,
	}
	if err := rabbitmq.PublishMessage(p.ch, rabbitmq.Exchange, rabbitmq.RoutingKeyReset, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
