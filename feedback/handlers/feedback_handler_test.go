package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stablio/api/feedback/services"
)

func newTestApp(repo *services.MockRepository) *fiber.App {
	app := fiber.New()
	app.Post("/feedback", NewFeedbackHandler(services.NewService(repo)).Submit)
	return app
}

func postFeedback(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSubmitFeedback(t *testing.T) {
	t.Run("stores a message", func(t *testing.T) {
		repo := new(services.MockRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp := postFeedback(t, newTestApp(repo), `{"name":"Ada","email":"ada@example.com","message":"Love the directory"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Love the directory", body["message"])
		repo.AssertExpectations(t)
	})

	t.Run("blank message is a validation error", func(t *testing.T) {
		repo := new(services.MockRepository)

		resp := postFeedback(t, newTestApp(repo), `{"message":"  "}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
