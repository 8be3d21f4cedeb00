package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"jobboard-backend/config"
	authutils "jobboard-backend/lib/utils/auth-utils"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
)

func initTestConfig() {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(WithBodyLimit(16))
	app.Get("/me", AuthorizationRequired(), func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserID(ctx) + "|" + GetUserEmail(ctx) + "|" + string(GetUserRole(ctx)))
	})
	app.Get("/recruiter", AuthorizationRequired(), RecruiterRequired(), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Post("/echo", func(ctx *fiber.Ctx) error {
		return ctx.Send(ctx.Body())
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body io.Reader) (int, string) {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.Nil(t, err)
	data, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp.StatusCode, string(data)
}

func TestAuthorization(t *testing.T) {
	initTestConfig()
	app := newTestApp()

	t.Run(`missing token is unauthorized envelope`, func(t *testing.T) {
		status, body := doRequest(t, app, fiber.MethodGet, "/me", "", nil)
		require.Equal(t, fiber.StatusUnauthorized, status)
		resp := apimodels.Response{}
		require.Nil(t, json.Unmarshal([]byte(body), &resp))
		require.False(t, resp.Success)
		require.Equal(t, "UNAUTHORIZED", string(resp.Error.Code))
	})

	t.Run(`access token identifies the caller`, func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Jane", "jane@example.com", models.CandidateRole)
		require.Nil(t, err)
		status, body := doRequest(t, app, fiber.MethodGet, "/me", token, nil)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "user-1|jane@example.com|CANDIDATE", body)
	})

	t.Run(`refresh token is not a session`, func(t *testing.T) {
		token, err := authutils.GetRefreshToken("user-1")
		require.Nil(t, err)
		status, _ := doRequest(t, app, fiber.MethodGet, "/me", token, nil)
		require.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run(`forged token`, func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Jane", "jane@example.com", models.RecruiterRole)
		require.Nil(t, err)
		status, _ := doRequest(t, app, fiber.MethodGet, "/me", token+"x", nil)
		require.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run(`role check`, func(t *testing.T) {
		candidate, err := authutils.GetToken("user-1", "Jane", "jane@example.com", models.CandidateRole)
		require.Nil(t, err)
		status, body := doRequest(t, app, fiber.MethodGet, "/recruiter", candidate, nil)
		require.Equal(t, fiber.StatusForbidden, status)
		require.Contains(t, body, "FORBIDDEN")

		recruiter, err := authutils.GetToken("user-2", "Bob", "bob@example.com", models.RecruiterRole)
		require.Nil(t, err)
		status, _ = doRequest(t, app, fiber.MethodGet, "/recruiter", recruiter, nil)
		require.Equal(t, fiber.StatusOK, status)
	})
}

func TestBodyLimit(t *testing.T) {
	initTestConfig()
	app := newTestApp()

	status, _ := doRequest(t, app, fiber.MethodPost, "/echo", "", strings.NewReader("short"))
	require.Equal(t, fiber.StatusOK, status)

	status, body := doRequest(t, app, fiber.MethodPost, "/echo", "", strings.NewReader(strings.Repeat("x", 64)))
	require.Equal(t, fiber.StatusRequestEntityTooLarge, status)
	require.Contains(t, body, "VALIDATION_ERROR")
}
