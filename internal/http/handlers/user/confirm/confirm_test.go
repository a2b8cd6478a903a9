package confirm_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/account-service/internal/apperror"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/confirm"
	"github.com/magabrotheeeer/account-service/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ConfirmRegistration(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_RedirectOutcomes(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		serviceErr   error
		skipService  bool
		wantLocation string
	}{
		{
			name:         "successful confirmation",
			query:        "?token=good-token",
			wantLocation: confirm.AnchorSuccess,
		},
		{
			name:         "missing token never reaches the service",
			query:        "",
			skipService:  true,
			wantLocation: confirm.AnchorInvalidToken,
		},
		{
			name:         "invalid token",
			query:        "?token=bad-token",
			serviceErr:   fmt.Errorf("services.user.ConfirmRegistration: %w", apperror.ErrInvalidToken),
			wantLocation: confirm.AnchorInvalidToken,
		},
		{
			name:         "expired token",
			query:        "?token=old-token",
			serviceErr:   fmt.Errorf("services.user.ConfirmRegistration: %w", apperror.ErrTokenExpired),
			wantLocation: confirm.AnchorTokenExpired,
		},
		{
			name:         "already confirmed",
			query:        "?token=used-token",
			serviceErr:   fmt.Errorf("services.user.ConfirmRegistration: %w", apperror.ErrUserAlreadyConfirmed),
			wantLocation: confirm.AnchorAlreadyConfirmed,
		},
		{
			name:         "unexpected failure falls back to the login page",
			query:        "?token=any-token",
			serviceErr:   errors.New("db down"),
			wantLocation: confirm.AnchorFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			if !tt.skipService {
				if tt.serviceErr != nil {
					service.On("ConfirmRegistration", mock.Anything, mock.Anything).
						Return(nil, tt.serviceErr).Once()
				} else {
					service.On("ConfirmRegistration", mock.Anything, "good-token").
						Return(&models.User{ID: 1, Status: models.StatusActive}, nil).Once()
				}
			}

			handler := confirm.New(newNoopLogger(), service)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/confirm"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))

			service.AssertExpectations(t)
		})
	}
}
