package presenters

import (
	"Gomez-Kitchen/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	Response struct {
		Status     bool                       `json:"status"`
		Message    string                     `json:"message"`
		Data       any                        `json:"data,omitempty"`
		Pagination *domain.PaginationResponse `json:"pagination,omitempty"`
		Error      string                     `json:"error,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func PaginatedResponse(c *fiber.Ctx, data any, pagination domain.PaginationResponse, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Status:     true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	if statusCode >= fiber.StatusInternalServerError {
		log.Errorw(message, "path", c.Path(), "error", err)
	}
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// StatusFromError maps a service error to the HTTP status it is reported with.
func StatusFromError(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrIngredientLines):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrMenuNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCatalogProductNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotIngredientOwner),
		errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrNotMenuOwner),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrDivisionDegenerate):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrUnitConversion),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrDuplicateExtraUnit),
		errors.Is(err, domain.ErrAlreadyFollowing),
		errors.Is(err, domain.ErrNotFollowing),
		errors.Is(err, domain.ErrNoExternalID),
		errors.Is(err, domain.ErrCatalogUnusableResult),
		errors.Is(err, domain.ErrRecipeInstructions),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrParseUUID),
		errors.As(err, &validationErrors):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
