package handlers

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/internal/api/presenters"
	"Gomez-Kitchen/internal/utils"
	"Gomez-Kitchen/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		CreateIngredient(c *fiber.Ctx) error
		ImportFromCatalog(c *fiber.Ctx) error
		SearchCatalog(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetIngredientDetail(c *fiber.Ctx) error
		GetMyFollowing(c *fiber.Ctx) error
		GetUserFollowing(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		FollowIngredient(c *fiber.Ctx) error
		RefreshIngredient(c *fiber.Ctx) error
		UnfollowIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIngredient, err)
	}

	res, err := h.ingredientService.CreateIngredient(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIngredient)
}

func (h *ingredientHandler) ImportFromCatalog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ImportIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportIngredient, err)
	}

	res, err := h.ingredientService.ImportFromCatalog(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedImportIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessImportIngredient)
}

func (h *ingredientHandler) SearchCatalog(c *fiber.Ctx) error {
	res, err := h.ingredientService.SearchCatalog(c.Context(), c.Query("query"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedSearchCatalog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchCatalog)
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	page, perPage := utils.Pagination(c)
	filter := domain.IngredientFilter{
		Name:              c.Query("name"),
		PaginationRequest: domain.PaginationRequest{Page: page, ItemsPerPage: perPage},
	}

	res, pagination, err := h.ingredientService.GetIngredients(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetIngredients, err)
	}

	return presenters.PaginatedResponse(c, res, pagination, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredientDetail(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetIngredientByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredient)
}

func (h *ingredientHandler) GetMyFollowing(c *fiber.Ctx) error {
	return h.following(c, c.Locals("user_id").(string))
}

func (h *ingredientHandler) GetUserFollowing(c *fiber.Ctx) error {
	return h.following(c, c.Params("id"))
}

func (h *ingredientHandler) following(c *fiber.Ctx, userID string) error {
	page, perPage := utils.Pagination(c)

	res, pagination, err := h.ingredientService.GetFollowing(c.Context(), userID, domain.PaginationRequest{Page: page, ItemsPerPage: perPage})
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetIngredients, err)
	}

	return presenters.PaginatedResponse(c, res, pagination, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *ingredientHandler) FollowIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.ingredientService.FollowIngredient(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedFollowIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFollowIngredient)
}

func (h *ingredientHandler) RefreshIngredient(c *fiber.Ctx) error {
	res, err := h.ingredientService.RefreshIngredient(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRefreshIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRefreshIngredient)
}

func (h *ingredientHandler) UnfollowIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.ingredientService.UnfollowIngredient(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUnfollowIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUnfollowIngredient)
}
