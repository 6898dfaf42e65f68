package handlers

import (
	"Foodgram-Backend/domain"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubCartService struct {
	report domain.ShoppingReport
	err    error
}

func (s *stubCartService) AddToCart(_ context.Context, _ string, _ string) (domain.ShortRecipeResponse, error) {
	return domain.ShortRecipeResponse{}, s.err
}

func (s *stubCartService) RemoveFromCart(_ context.Context, _ string, _ string) error {
	return s.err
}

func (s *stubCartService) DownloadShoppingList(_ context.Context, _ string) (domain.ShoppingReport, error) {
	return s.report, s.err
}

func newDownloadApp(service *stubCartService) *fiber.App {
	app := fiber.New()
	handler := NewCartHandler(service)
	app.Get("/api/v1/recipes/download_shopping_cart", func(c *fiber.Ctx) error {
		c.Locals("user_id", "11111111-1111-1111-1111-111111111111")
		return handler.DownloadShoppingList(c)
	})
	return app
}

func TestDownloadShoppingListStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty cart is a client error", domain.ErrCartEmpty, fiber.StatusBadRequest},
		{"unknown user", domain.ErrUserNotFound, fiber.StatusNotFound},
		{"store failure is a server fault", errors.New("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newDownloadApp(&stubCartService{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/download_shopping_cart", nil)
			res, err := app.Test(req)
			assert.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}
}

func TestDownloadShoppingListServesAttachment(t *testing.T) {
	app := newDownloadApp(&stubCartService{report: domain.ShoppingReport{
		Content:  "Список покупок для: Иван Иванов",
		Filename: "ivan_shopping_list.txt",
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/download_shopping_cart", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="ivan_shopping_list.txt"`, res.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.Equal(t, "Список покупок для: Иван Иванов", string(body))
}
