// Package sender реализует отправку писем по сообщениям очереди нотификаций:
// подтверждение регистрации и сброс пароля. Работает вне транзакционного
// пути запроса — письмо может уйти уже после того, как вызвавший запрос
// получил ответ.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/lib/smtp"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// Service потребляет сообщения очереди и отправляет письма по SMTP.
type Service struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(transport smtp.TransportInterface, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// SendConfirmationEmail отправляет письмо со ссылкой подтверждения регистрации.
func (s *Service) SendConfirmationEmail(body []byte) error {
	var message models.EmailMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	subject := "Confirm your VibeFlow registration"
	link := fmt.Sprintf("%s/api/v1/users/confirm?token=%s", message.BaseURL, message.Token)
	bodyText := fmt.Sprintf("Hello, %s!\n\n"+
		"Thank you for registering at VibeFlow.\n"+
		"Please confirm your email address by following the link below:\n\n%s\n\n"+
		"If you did not create this account, just ignore this message.",
		message.Name, link)

	return s.send(message.Email, subject, bodyText)
}

// SendResetPasswordEmail отправляет письмо со ссылкой сброса пароля.
func (s *Service) SendResetPasswordEmail(body []byte) error {
	var message models.EmailMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	subject := "Reset your VibeFlow password"
	link := fmt.Sprintf("%s/reset-password?token=%s", message.BaseURL, message.Token)
	bodyText := fmt.Sprintf("Hello, %s!\n\n"+
		"We received a request to reset the password for your account.\n"+
		"You can set a new password by following the link below:\n\n%s\n\n"+
		"If you did not request a password reset, no action is needed.",
		message.Name, link)

	return s.send(message.Email, subject, bodyText)
}

// RenderMessage собирает полный текст письма с заголовками.
func RenderMessage(from, to, subject, bodyText string) string {
	return strings.Join([]string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")
}

func (s *Service) send(to, subject, bodyText string) error {
	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	from := s.transport.GetSMTPUser()
	if err = client.Mail(from); err != nil {
		s.log.Error("failed to set mail sender", sl.Err(err))
		return fmt.Errorf("failed to set mail sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		s.log.Error("failed to set recipient", sl.Err(err))
		return fmt.Errorf("failed to set recipient %s: %w", to, err)
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get write closer", sl.Err(err))
		return fmt.Errorf("failed to get write closer: %w", err)
	}
	if _, err = wc.Write([]byte(RenderMessage(from, to, subject, bodyText))); err != nil {
		s.log.Error("failed to write message", sl.Err(err))
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close write closer", sl.Err(err))
		return fmt.Errorf("failed to close write closer: %w", err)
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return fmt.Errorf("failed to quit SMTP client: %w", err)
	}

	s.log.Info("email sent successfully", slog.String("to", to))
	return nil
}
