package login_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/apperror"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/account-service/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_Login(t *testing.T) {
	activeUser := &models.User{
		ID:     1,
		Email:  "user@example.com",
		Name:   "User",
		Status: models.StatusActive,
	}

	tests := []struct {
		name       string
		body       string
		setupMocks func(s *ServiceMock)
		wantStatus int
	}{
		{
			name: "successful login returns token",
			body: `{"email":"user@example.com","password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "user@example.com", "password123").
					Return("session-jwt", activeUser, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "broken JSON",
			body:       `{"email":`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password fails validation",
			body:       `{"email":"user@example.com","password":"short"}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown email looks like wrong password",
			body: `{"email":"ghost@example.com","password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "ghost@example.com", "password123").
					Return("", nil, fmt.Errorf("services.user.Login: %w", apperror.ErrIncorrectEmail)).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			body: `{"email":"user@example.com","password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", mock.Anything, "user@example.com", "password123").
					Return("", nil, fmt.Errorf("services.user.Login: %w", apperror.ErrIncorrectPassword)).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			tt.setupMocks(service)

			handler := login.New(newNoopLogger(), service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				// Неверный email и неверный пароль дают одинаковое тело ответа
				assert.Contains(t, rec.Body.String(), "invalid credentials")
			}
			service.AssertExpectations(t)
		})
	}
}

func TestHandler_Login_ResponseShape(t *testing.T) {
	service := new(ServiceMock)
	service.On("Login", mock.Anything, "user@example.com", "password123").
		Return("session-jwt", &models.User{
			ID:           1,
			Email:        "user@example.com",
			Name:         "User",
			PasswordHash: "$2a$10$secret",
			Status:       models.StatusActive,
		}, nil).Once()

	handler := login.New(newNoopLogger(), service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"email":"user@example.com","password":"password123"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "session-jwt", data["token"])

	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", user["email"])

	service.AssertExpectations(t)
}
