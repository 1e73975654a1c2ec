package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/collegemonitor/monitor-api/internal/dto"
	"github.com/collegemonitor/monitor-api/internal/handler"
	"github.com/collegemonitor/monitor-api/internal/service"
)

type stubAuthService struct {
	username string
	password string
}

func (s *stubAuthService) Login(_ context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	if req.Username != s.username || req.Password != s.password {
		return dto.LoginResponse{}, service.ErrInvalidCredentials
	}
	return dto.LoginResponse{Token: "session-token", ExpiresAt: 1757000000, Username: req.Username}, nil
}

func newAuthApp(svc service.AuthService) *fiber.App {
	app := fiber.New()
	handler.NewAuthHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/auth"))
	return app
}

func postLogin(t *testing.T, app *fiber.App, body map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthHandlerLoginIssuesToken(t *testing.T) {
	app := newAuthApp(&stubAuthService{username: "admin", password: "admin123"})

	resp := postLogin(t, app, map[string]string{"username": "admin", "password": "admin123"})
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool              `json:"success"`
		Data    dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.Equal(t, "session-token", envelope.Data.Token)
	require.Equal(t, "admin", envelope.Data.Username)
}

func TestAuthHandlerRejectsBadPassword(t *testing.T) {
	app := newAuthApp(&stubAuthService{username: "admin", password: "admin123"})

	resp := postLogin(t, app, map[string]string{"username": "admin", "password": "nope"})
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.False(t, envelope.Success)
	require.Equal(t, "invalid username or password", envelope.Message)
}

func TestAuthHandlerRejectsMalformedBody(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
