package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceRequestRejectsBadInput(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/service-requests", CreateServiceRequest)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed service id",
			body: `{"service_id":"not-a-uuid","name":"Jane","email":"jane@example.com","message":"Hi"}`,
		},
		{
			name: "missing email",
			body: `{"name":"Jane","message":"Hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/service-requests", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
