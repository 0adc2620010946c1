package handlers

import (
	"log"

	"sapling/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes; the caller wraps them in the auth
// middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/cart", h.HandleGetCart)
	router.Post("/cart", h.HandleAddToCart)
}

// AddToCartRequest represents the request body for adding a cart line.
type AddToCartRequest struct {
	PlantID  string `json:"plantId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// HandleAddToCart merges a line into the caller's cart and returns the
// updated cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	cart, err := h.service.AddToCart(userID, req.PlantID, req.Quantity)
	if err != nil {
		log.Printf("Error adding to cart for user %s: %v", userID, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"cart": cart,
	})
}

// HandleGetCart returns the caller's cart joined with the current catalog
// snapshot, plus the total in minor currency units.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	items, total, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"items": items,
		"total": total,
	})
}
