package handlers

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/internal/api/presenters"
	"Gomez-Kitchen/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GenerateList(c *fiber.Ctx) error
		GenerateMenuList(c *fiber.Ctx) error
		ExportList(c *fiber.Ctx) error
		MailList(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) parse(c *fiber.Ctx) (*domain.GenerateListRequest, error) {
	req := new(domain.GenerateListRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateList, err)
	}
	return req, nil
}

func (h *shoppingHandler) GenerateList(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if req == nil {
		return err
	}

	res, err := h.shoppingService.GenerateList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGenerateList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateList)
}

func (h *shoppingHandler) GenerateMenuList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingService.GenerateMenuList(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGenerateList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateList)
}

func (h *shoppingHandler) ExportList(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if req == nil {
		return err
	}

	res, err := h.shoppingService.ExportList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedExportList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExportList)
}

func (h *shoppingHandler) MailList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req, err := h.parse(c)
	if req == nil {
		return err
	}

	if err := h.shoppingService.MailList(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedMailList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMailList)
}
