package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcraft/session/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    fiber.Handler
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success response passes through",
			handler:    func(c fiber.Ctx) error { return c.SendString("ok") },
			wantStatus: fiber.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "fiber error keeps its status",
			handler:    func(c fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "teapot") },
			wantStatus: fiber.StatusTeapot,
		},
		{
			name:       "unknown error becomes internal",
			handler:    func(c fiber.Ctx) error { return errors.New("boom") },
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg := NewLogging(testutil.MakeNoopLogger())

			app := fiber.New()
			app.Use(lg.Handle)
			app.Get("/", tt.handler)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}
