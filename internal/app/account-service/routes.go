// Package accountservice предоставляет маршруты для основного приложения.
package accountservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/changepassword"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/confirm"
	deletehandler "github.com/magabrotheeeer/account-service/internal/http/handlers/user/delete"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/me"
	recoverhandler "github.com/magabrotheeeer/account-service/internal/http/handlers/user/recover"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/resetpassword"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/resetrequest"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/updatename"
	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	userservice "github.com/magabrotheeeer/account-service/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, userService *userservice.Service, sessions jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/users/register", register.New(logger, userService).ServeHTTP)
		r.Post("/login", login.New(logger, userService).ServeHTTP)
		r.Get("/users/confirm", confirm.New(logger, userService).ServeHTTP)
		r.Get("/users/me", me.New(logger, userService, sessions).ServeHTTP)
		r.Post("/users/email-reset-password", resetrequest.New(logger, userService).ServeHTTP)
		r.Put("/users/reset-password", resetpassword.New(logger, userService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(sessions, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Put("/users/profile", updatename.New(logger, userService).ServeHTTP)
			r.Put("/users/password", changepassword.New(logger, userService).ServeHTTP)
			r.Put("/users/delete", deletehandler.New(logger, userService).ServeHTTP)
			r.Put("/users/recover", recoverhandler.New(logger, userService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
