// Package user содержит логику бизнес-уровня жизненного цикла аккаунта:
// регистрацию, подтверждение по токену, вход, смену профиля и пароля,
// мягкое удаление с восстановлением и сброс пароля по письму.
//
// Каждая операция получает контекст и явную личность вызывающего (email),
// никакого глобального состояния запроса здесь нет. Любое изменение
// сначала фиксируется в хранилище и только после этого публикуется
// событие нотификации; сбой публикации логируется и не влияет на результат.
package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/account-service/internal/apperror"
	"github.com/magabrotheeeer/account-service/internal/config"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/account-service/internal/lib/password"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/lib/token"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// GetUserByEmail возвращает пользователя по email,
	// ошибка оборачивает sql.ErrNoRows если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя по ID.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// ExistsByEmail проверяет занятость email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdateUser перезаписывает изменяемые поля пользователя.
	UpdateUser(ctx context.Context, user models.User) error
}

// EventPublisher описывает публикацию событий нотификаций.
// Публикация всегда происходит после успешной записи в базу.
type EventPublisher interface {
	PublishRegistration(user *models.User) error
	PublishPasswordReset(user *models.User) error
}

// ResetThrottle ограничивает частоту запросов сброса пароля.
type ResetThrottle interface {
	AcquireOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Service отвечает за все команды жизненного цикла аккаунта.
type Service struct {
	users    UserRepository
	tokens   token.Maker
	sessions jwt.Maker
	events   EventPublisher
	throttle ResetThrottle
	cfg      config.EmailTokens
	log      *slog.Logger
	now      func() time.Time
}

// New создает новый экземпляр Service.
func New(users UserRepository, tokens token.Maker, sessions jwt.Maker,
	events EventPublisher, throttle ResetThrottle, cfg config.EmailTokens, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		events:   events,
		throttle: throttle,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник времени. Используется в тестах
// для проверки границ окна действия токенов.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Register создает нового пользователя со статусом new и хэшированным паролем,
// после записи в базу публикует событие регистрации для письма-подтверждения.
func (s *Service) Register(ctx context.Context, name, email, rawPassword string) (*models.User, error) {
	const op = "services.user.Register"

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrEmailAlreadyExists)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	newUser := models.User{
		Email:            email,
		Name:             name,
		PasswordHash:     hashed,
		Status:           models.StatusNew,
		RegistrationDate: s.now(),
	}
	newUser.ID, err = s.users.CreateUser(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.events.PublishRegistration(&newUser); err != nil {
		s.log.Error("failed to publish registration event", sl.Err(err),
			slog.Int64("user_id", newUser.ID))
	}
	return &newUser, nil
}

// ConfirmRegistration переводит пользователя из статуса new в active
// по валидному и не просроченному токену подтверждения.
func (s *Service) ConfirmRegistration(ctx context.Context, tokenStr string) (*models.User, error) {
	const op = "services.user.ConfirmRegistration"

	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if claims.Purpose != token.PurposeConfirmation {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
	}
	if claims.ExpiredAfterDays(s.now(), s.cfg.DaysForEmailConfirmation) {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrTokenExpired)
	}

	u, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.Status == models.StatusActive {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrUserAlreadyConfirmed)
	}

	u.Status = models.StatusActive
	if err := s.users.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Login проверяет пароль пользователя и возвращает сессионный JWT.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "services.user.Login"

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, fmt.Errorf("%s: %w", op, apperror.ErrIncorrectEmail)
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(u.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, apperror.ErrIncorrectPassword)
	}
	sessionToken, err := s.sessions.GenerateToken(u.Email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return sessionToken, u, nil
}

// GetByEmail возвращает пользователя по email личности вызывающего.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "services.user.GetByEmail"

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperror.ErrUserNotAuthenticated)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateName меняет отображаемое имя текущего пользователя.
// Намеренно не блокируется для удалённых аккаунтов, как и смена пароля.
func (s *Service) UpdateName(ctx context.Context, email, newName string) (*models.User, error) {
	const op = "services.user.UpdateName"

	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Name = newName
	if err := s.users.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdatePassword меняет пароль текущего пользователя после проверки старого.
// Совпадение нового пароля со старым сравнивается как строки: пароль,
// отличающийся только регистром, пройдёт.
func (s *Service) UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) (*models.User, error) {
	const op = "services.user.UpdatePassword"

	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(u.PasswordHash, oldPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrIncorrectPassword)
	}
	if oldPassword == newPassword {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrPasswordSameAsOld)
	}

	u.PasswordHash, err = password.GetHash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.users.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Delete мягко удаляет текущего пользователя: статус deleted,
// дата удаления — текущий момент UTC. Пароль при этом не меняется.
func (s *Service) Delete(ctx context.Context, email, rawPassword string) (*models.User, error) {
	const op = "services.user.Delete"

	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(u.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrIncorrectPassword)
	}

	now := s.now()
	u.Status = models.StatusDeleted
	u.DeletionDate = &now
	if err := s.users.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Recover возвращает мягко удалённого пользователя в статус active
// и очищает дату удаления. Обратная операция к Delete.
func (s *Service) Recover(ctx context.Context, email string) (*models.User, error) {
	const op = "services.user.Recover"

	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u.Status = models.StatusActive
	u.DeletionDate = nil
	if err := s.users.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// RequestPasswordReset инициирует сброс пароля: находит пользователя по email
// и публикует событие для письма со ссылкой сброса. Для неизвестного email
// событие не публикуется. Повторный запрос внутри кулдауна отклоняется.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (*models.User, error) {
	const op = "services.user.RequestPasswordReset"

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperror.ErrIncorrectEmail)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.throttle != nil {
		acquired, err := s.throttle.AcquireOnce(ctx, "reset-request:"+email, s.cfg.ResetRequestCooldown)
		if err != nil {
			// Недоступный redis не должен ломать сброс пароля.
			s.log.Error("reset throttle unavailable", sl.Err(err))
		} else if !acquired {
			return nil, fmt.Errorf("%s: %w", op, apperror.ErrTooManyResetRequests)
		}
	}

	if err := s.events.PublishPasswordReset(u); err != nil {
		s.log.Error("failed to publish password reset event", sl.Err(err),
			slog.Int64("user_id", u.ID))
	}
	return u, nil
}

// ResetPassword устанавливает новый пароль по токену сброса из письма.
// Старый пароль не проверяется: владение токеном и есть аутентификация.
func (s *Service) ResetPassword(ctx context.Context, tokenStr, newPassword string) (*models.User, error) {
	const op = "services.user.ResetPassword"

	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if claims.Purpose != token.PurposeReset {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
	}
	if claims.ExpiredAfterDays(s.now(), s.cfg.DaysForResetPassword) {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrTokenExpired)
	}

	u, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u.PasswordHash, err = password.GetHash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.users.UpdateUser(ctx, *u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
