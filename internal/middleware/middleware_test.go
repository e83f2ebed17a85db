package middleware

import (
	"Gomez-Kitchen/pkg/jwt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", NewMiddleware().AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTServiceWithSecret("secret")
	token := jwtService.GenerateTokenUser(jwt.TokenUser{ID: "user-7"})
	app := newTestApp(jwtService)

	tests := []struct {
		name   string
		header string
		value  string
		status int
	}{
		{name: "bearer", header: "Authorization", value: "Bearer " + token, status: fiber.StatusOK},
		{name: "x-auth-token", header: "x-auth-token", value: token, status: fiber.StatusOK},
		{name: "missing", status: fiber.StatusUnauthorized},
		{name: "bad scheme", header: "Authorization", value: "Basic abc", status: fiber.StatusUnauthorized},
		{name: "garbage", header: "x-auth-token", value: "abc", status: fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, "user-7", string(body))
			}
		})
	}
}
