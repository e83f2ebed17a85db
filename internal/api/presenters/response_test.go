package presenters

import (
	"Gomez-Kitchen/domain"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrIngredientNotFound, fiber.StatusNotFound},
		{fmt.Errorf("menu recipe x: %w", domain.ErrRecipeNotFound), fiber.StatusNotFound},
		{fmt.Errorf("%w: %w", domain.ErrIngredientLines, domain.ErrIngredientNotFound), fiber.StatusBadRequest},
		{fmt.Errorf("%w: %w", domain.ErrIngredientLines, domain.ErrUnitConversion), fiber.StatusBadRequest},
		{domain.ErrNotRecipeOwner, fiber.StatusForbidden},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{domain.ErrAlreadyFollowing, fiber.StatusBadRequest},
		{domain.ErrCatalogUnusableResult, fiber.StatusBadRequest},
		{domain.ErrDivisionDegenerate, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("fetch: %w", domain.ErrCatalogUnavailable), fiber.StatusBadGateway},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}
