package handlers

import (
	"KhajaGhar-Backend/domain"
	"KhajaGhar-Backend/internal/api/presenters"
	"KhajaGhar-Backend/pkg/cart"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		AddItem(c *fiber.Ctx) error
		UpdateQuantity(c *fiber.Ctx) error
		RemoveLine(c *fiber.Ctx) error
		Clear(c *fiber.Ctx) error
		GetCart(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCartItem, err)
	}

	res, err := h.cartService.AddItem(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddCartItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCartItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCartItem)
}

func (h *cartHandler) UpdateQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	lineID := c.Params("id")
	req := new(domain.UpdateCartLineRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.cartService.UpdateQuantity(c.Context(), lineID, req.Quantity, userID); err != nil {
		if errors.Is(err, domain.ErrLineNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateCartLine, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartLine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCartLine)
}

func (h *cartHandler) RemoveLine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	lineID := c.Params("id")

	if err := h.cartService.RemoveLine(c.Context(), lineID, userID); err != nil {
		if errors.Is(err, domain.ErrLineNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveCartLine, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCartLine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartLine)
}

func (h *cartHandler) Clear(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cartService.Clear(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCart)
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	lines, err := h.cartService.ListLines(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"lines": lines}, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	summary, err := h.cartService.Summarize(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCartSummary, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetCartSummary)
}
