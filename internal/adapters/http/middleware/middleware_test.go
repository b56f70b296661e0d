package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quirknotes/internal/adapters/http/middleware"
	"quirknotes/internal/domain/services"
	"quirknotes/pkg/logger"
)

var errTokenRejected = errors.New("token rejected")

type fakeAuthUseCase struct {
	tokens map[string]string
	calls  int
}

func (f *fakeAuthUseCase) Register(context.Context, string, string) (*services.TokenResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuthUseCase) Login(context.Context, string, string) (*services.TokenResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuthUseCase) Authenticate(_ context.Context, token string) (string, error) {
	f.calls++
	if username, ok := f.tokens[token]; ok {
		return username, nil
	}
	return "", errTokenRejected
}

func newProtectedApp(authUseCase *fakeAuthUseCase) *fiber.App {
	app := fiber.New()
	app.Get("/me", func(c fiber.Ctx) error {
		username, _ := middleware.Username(c)
		return c.JSON(fiber.Map{"username": username})
	}, middleware.NewAuthMiddleware(authUseCase))
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedCalls  int
	}{
		{name: "missing header", header: "", expectedStatus: fiber.StatusUnauthorized, expectedCalls: 0},
		{name: "not a bearer scheme", header: "Basic dXNlcjpwYXNz", expectedStatus: fiber.StatusUnauthorized, expectedCalls: 0},
		{name: "empty bearer token", header: "Bearer ", expectedStatus: fiber.StatusUnauthorized, expectedCalls: 0},
		{name: "rejected token", header: "Bearer forged", expectedStatus: fiber.StatusUnauthorized, expectedCalls: 1},
		{name: "valid token", header: "Bearer good", expectedStatus: fiber.StatusOK, expectedCalls: 1},
		{name: "lower-case scheme", header: "bearer good", expectedStatus: fiber.StatusOK, expectedCalls: 1},
		{name: "upper-case scheme", header: "BEARER good", expectedStatus: fiber.StatusOK, expectedCalls: 1},
		{name: "scheme without token", header: "Bearer", expectedStatus: fiber.StatusUnauthorized, expectedCalls: 0},
		{name: "scheme glued to token", header: "Bearergood", expectedStatus: fiber.StatusUnauthorized, expectedCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUseCase := &fakeAuthUseCase{tokens: map[string]string{"good": "alice"}}
			app := newProtectedApp(authUseCase)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedCalls, authUseCase.calls)

			body := decode(t, resp)
			if tt.expectedStatus == fiber.StatusOK {
				assert.Equal(t, "alice", body["username"])
			} else {
				assert.Equal(t, "Unauthorized.", body["error"])
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewRecoveryMiddleware())
	app.Get("/panic", func(fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error.", decode(t, resp)["error"])
}

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Get("/id", func(c fiber.Ctx) error {
		id, _ := logger.GetRequestID(c.Context())
		return c.JSON(fiber.Map{"id": id})
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-123")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "req-123", resp.Header.Get(middleware.HeaderRequestID))
		assert.Equal(t, "req-123", decode(t, resp)["id"])
	})

	t.Run("generates id when absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/id", nil))
		require.NoError(t, err)

		id := resp.Header.Get(middleware.HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, decode(t, resp)["id"])
	})
}

func TestLoggerMiddlewareScopesLoggerToRequest(t *testing.T) {
	global, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	logger.SetGlobalLogger(global)
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	app := fiber.New()
	app.Use(middleware.NewLoggerMiddleware())
	app.Get("/scoped", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"scoped": fmt.Sprint(logger.Log(c.Context()) != global)})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/scoped", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", decode(t, resp)["scoped"])
}
