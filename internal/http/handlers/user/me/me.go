// Package me реализует HTTP-обработчик профиля текущего пользователя.
// Для неаутентифицированного запроса возвращается анонимный профиль,
// а не ошибка — этим пользуется фронтенд при первом открытии страницы.
package me

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// Service описывает интерфейс получения пользователя по email.
type Service interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handler обрабатывает запрос профиля.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions jwt.Maker
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, sessions jwt.Maker) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
	}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает профиль аутентифицированного пользователя или анонимный профиль.
// @Tags Users
// @Produce  json
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Router /users/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	anonymous := models.UserDTO{
		Name:   "Anonymous User",
		Email:  "anonymousUser",
		Status: models.StatusActive,
	}

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		render.JSON(w, r, response.OKWithData(anonymous))
		return
	}

	claims, err := h.sessions.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		log.Info("session token rejected", sl.Err(err))
		render.JSON(w, r, response.OKWithData(anonymous))
		return
	}

	currentUser, err := h.service.GetByEmail(r.Context(), claims.Email)
	if err != nil {
		log.Error("failed to load current user", sl.Err(err))
		render.JSON(w, r, response.OKWithData(anonymous))
		return
	}

	render.JSON(w, r, response.OKWithData(currentUser.ToDTO()))
}
