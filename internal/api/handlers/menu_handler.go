package handlers

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/internal/api/presenters"
	"Gomez-Kitchen/internal/utils"
	"Gomez-Kitchen/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		CreateMenu(c *fiber.Ctx) error
		GetMenus(c *fiber.Ctx) error
		GetMenuDetail(c *fiber.Ctx) error
		UpdateMenu(c *fiber.Ctx) error
		DeleteMenu(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) CreateMenu(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenu, err)
	}

	res, err := h.menuService.CreateMenu(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenu)
}

func (h *menuHandler) GetMenus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, perPage := utils.Pagination(c)

	res, pagination, err := h.menuService.GetMenus(c.Context(), userID, domain.PaginationRequest{Page: page, ItemsPerPage: perPage})
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetMenus, err)
	}

	return presenters.PaginatedResponse(c, res, pagination, domain.MessageSuccessGetMenus)
}

func (h *menuHandler) GetMenuDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.menuService.GetMenuByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) UpdateMenu(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenu, err)
	}

	res, err := h.menuService.UpdateMenu(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenu)
}

func (h *menuHandler) DeleteMenu(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.menuService.DeleteMenu(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeleteMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteMenu)
}
