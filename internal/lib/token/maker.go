package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/account-service/internal/apperror"
)

// Maker описывает интерфейс выпуска и разбора токенов для писем.
type Maker interface {
	// NewConfirmationToken выпускает токен подтверждения регистрации,
	// привязанный к id аккаунта и дате его регистрации.
	NewConfirmationToken(userID int64, registrationDate time.Time) (string, error)
	// NewResetToken выпускает токен сброса пароля для аккаунта.
	NewResetToken(userID int64) (string, error)
	// Parse проверяет подпись и обязательные поля, возвращает типизированные claims.
	Parse(tokenStr string) (*Claims, error)
}

// MakerImpl реализует Maker поверх HS256 JWT с общим секретным ключом.
type MakerImpl struct {
	secretKey string
	now       func() time.Time
}

// NewMaker создаёт новый MakerImpl на основе секретного ключа.
func NewMaker(secretKey string) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// NewMakerWithClock создаёт MakerImpl с внешним источником времени.
// Используется в тестах для проверки границы окна действия.
func NewMakerWithClock(secretKey string, now func() time.Time) *MakerImpl {
	return &MakerImpl{secretKey: secretKey, now: now}
}

// NewConfirmationToken выпускает подписанный токен подтверждения регистрации.
func (m *MakerImpl) NewConfirmationToken(userID int64, registrationDate time.Time) (string, error) {
	const op = "token.NewConfirmationToken"
	claims := Claims{
		Purpose:          PurposeConfirmation,
		UserID:           userID,
		RegistrationDate: jwt.NewNumericDate(registrationDate.UTC()),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(m.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// NewResetToken выпускает подписанный токен сброса пароля.
// Токен привязан только к id аккаунта, дата регистрации не фиксируется.
func (m *MakerImpl) NewResetToken(userID int64) (string, error) {
	const op = "token.NewResetToken"
	claims := Claims{
		Purpose: PurposeReset,
		UserID:  userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(m.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Parse разбирает токен, проверяет подпись и наличие обязательных полей.
//
// Любая проблема разбора — битая строка, неверная подпись, отсутствующий
// user_id или registration_date у токена подтверждения — возвращается как
// apperror.ErrInvalidToken, чтобы вызывающая сторона не различала причины.
func (m *MakerImpl) Parse(tokenStr string) (*Claims, error) {
	const op = "token.Parse"

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
	}
	if claims.UserID == 0 || claims.IssuedAt == nil {
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
	}
	switch claims.Purpose {
	case PurposeConfirmation:
		if claims.RegistrationDate == nil {
			return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
		}
	case PurposeReset:
	default:
		return nil, fmt.Errorf("%s: %w", op, apperror.ErrInvalidToken)
	}
	return claims, nil
}
