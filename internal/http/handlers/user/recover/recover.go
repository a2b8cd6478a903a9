// Package recover реализует HTTP-обработчик восстановления удаленного аккаунта.
package recover

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// Service описывает интерфейс бизнес-логики восстановления аккаунта.
type Service interface {
	Recover(ctx context.Context, email string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы восстановления аккаунта.
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

// ServeHTTP godoc
// @Summary Восстановление аккаунта
// @Description Возвращает аккаунт текущего пользователя из статуса deleted в active.
// @Tags Users
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Восстановленный пользователь"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Router /users/recover [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.recover"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("email is missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user not authenticated"))
		return
	}

	recoveredUser, err := h.service.Recover(r.Context(), email)
	if err != nil {
		log.Error("failed to recover user", sl.Err(err))
		response.AppError(w, r, err)
		return
	}

	log.Info("user recovered", slog.Int64("user_id", recoveredUser.ID))
	render.JSON(w, r, response.OKWithData(recoveredUser.ToDTO()))
}
