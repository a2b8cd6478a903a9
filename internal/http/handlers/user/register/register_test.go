package register_test

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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/apperror"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/account-service/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_Register(t *testing.T) {
	createdUser := &models.User{
		ID:               1,
		Email:            "new@example.com",
		Name:             "New User",
		PasswordHash:     "$2a$10$secret",
		Status:           models.StatusNew,
		RegistrationDate: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		body       string
		setupMocks func(s *ServiceMock)
		wantStatus int
	}{
		{
			name: "successful registration",
			body: `{"name":"New User","email":"new@example.com","password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, "New User", "new@example.com", "password123").
					Return(createdUser, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "broken JSON",
			body:       `{"name":`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"name":"New User","password":"password123"}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed email",
			body:       `{"name":"New User","email":"not-an-email","password":"password123"}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "short password",
			body:       `{"name":"New User","email":"new@example.com","password":"short"}`,
			setupMocks: func(_ *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "email already taken",
			body: `{"name":"New User","email":"new@example.com","password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, "New User", "new@example.com", "password123").
					Return(nil, fmt.Errorf("services.user.Register: %w", apperror.ErrEmailAlreadyExists)).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			tt.setupMocks(service)

			handler := register.New(newNoopLogger(), service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestHandler_Register_ResponseHidesPasswordHash(t *testing.T) {
	service := new(ServiceMock)
	service.On("Register", mock.Anything, "New User", "new@example.com", "password123").
		Return(&models.User{
			ID:           1,
			Email:        "new@example.com",
			Name:         "New User",
			PasswordHash: "$2a$10$secret",
			Status:       models.StatusNew,
		}, nil).Once()

	handler := register.New(newNoopLogger(), service)

	body := `{"name":"New User","email":"new@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new", data["status"])
	assert.Equal(t, "new@example.com", data["email"])

	service.AssertExpectations(t)
}
