package handlers

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"Gomez-Kitchen/internal/middleware"
	"Gomez-Kitchen/internal/utils"
	"Gomez-Kitchen/pkg/jwt"
	"Gomez-Kitchen/pkg/user"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers struct {
	users map[string]*entities.User
}

func (m *memoryUsers) CreateUser(_ context.Context, u *entities.User) error {
	m.users[u.ID.String()] = u
	return nil
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memoryUsers) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	return err == nil, nil
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newUserApp() *fiber.App {
	utils.InitValidator()
	jwtService := jwt.NewJWTServiceWithSecret("secret")
	h := NewUserHandler(user.NewUserService(&memoryUsers{users: map[string]*entities.User{}}, jwtService), utils.Validate)

	app := fiber.New()
	auth := middleware.NewMiddleware().AuthMiddleware(jwtService)
	app.Post("/api/users", h.Register)
	app.Post("/api/auth", h.Login)
	app.Get("/api/users/me", auth, h.Me)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestUserHandler_RegisterLoginMe(t *testing.T) {
	app := newUserApp()

	status, env := doJSON(t, app, "POST", "/api/users", `{"name":"Ana","email":"ana@example.com","password":"secreto"}`, nil)
	require.Equal(t, fiber.StatusCreated, status)
	var registered domain.RegisterResponse
	require.NoError(t, json.Unmarshal(env.Data, &registered))
	assert.NotEmpty(t, registered.Token)

	status, _ = doJSON(t, app, "POST", "/api/users", `{"name":"Ana","email":"ana@example.com","password":"secreto"}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/api/auth", `{"email":"ana@example.com","password":"incorrecta"}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = doJSON(t, app, "POST", "/api/auth", `{"email":"ana@example.com","password":"secreto"}`, nil)
	require.Equal(t, fiber.StatusOK, status)
	var login domain.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))

	status, env = doJSON(t, app, "GET", "/api/users/me", "", map[string]string{"x-auth-token": login.Token})
	require.Equal(t, fiber.StatusOK, status)
	var me domain.MeResponse
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, registered.ID, me.ID)
	assert.Equal(t, "ana@example.com", me.Email)
}

func TestUserHandler_RegisterValidation(t *testing.T) {
	app := newUserApp()

	status, env := doJSON(t, app, "POST", "/api/users", `{"name":"A","email":"nope","password":"1"}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Status)
	assert.Equal(t, domain.MessageFailedRegister, env.Message)
}
