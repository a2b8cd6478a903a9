// Package confirm реализует HTTP-обработчик подтверждения регистрации по токену
// из письма. В отличие от остальных обработчиков ответ здесь — редирект:
// каждый исход подтверждения ведёт на свой якорь страницы логина.
package confirm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/account-service/internal/apperror"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// Якоря страницы логина — внешний контракт с фронтендом,
// каждый исход подтверждения различим на стороне UI.
const (
	AnchorSuccess          = "/login#successful-confirmation"
	AnchorInvalidToken     = "/login#invalid-token"
	AnchorTokenExpired     = "/login#token-expired"
	AnchorAlreadyConfirmed = "/login#user-already-confirmed"
	AnchorFallback         = "/login"
)

// Service описывает интерфейс бизнес-логики подтверждения регистрации.
type Service interface {
	ConfirmRegistration(ctx context.Context, token string) (*models.User, error)
}

// Handler обрабатывает переход по ссылке подтверждения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// RedirectFor возвращает адрес редиректа для результата подтверждения.
func RedirectFor(err error) string {
	switch {
	case err == nil:
		return AnchorSuccess
	case errors.Is(err, apperror.ErrInvalidToken):
		return AnchorInvalidToken
	case errors.Is(err, apperror.ErrTokenExpired):
		return AnchorTokenExpired
	case errors.Is(err, apperror.ErrUserAlreadyConfirmed):
		return AnchorAlreadyConfirmed
	default:
		return AnchorFallback
	}
}

// ServeHTTP godoc
// @Summary Подтверждение регистрации
// @Description Подтверждает регистрацию по токену из письма и делает редирект на страницу логина.
// @Tags Users
// @Param token query string true "Токен подтверждения"
// @Success 302 "Редирект на исход подтверждения"
// @Router /users/confirm [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.confirm"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		log.Error("confirmation token is missing")
		http.Redirect(w, r, AnchorInvalidToken, http.StatusFound)
		return
	}

	confirmedUser, err := h.service.ConfirmRegistration(r.Context(), tokenStr)
	if err != nil {
		log.Error("confirmation failed", sl.Err(err))
		http.Redirect(w, r, RedirectFor(err), http.StatusFound)
		return
	}

	log.Info("user confirmed", slog.Int64("user_id", confirmedUser.ID))
	http.Redirect(w, r, AnchorSuccess, http.StatusFound)
}
