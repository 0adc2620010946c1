package handlers

import (
	"log"

	"sapling/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes; the caller wraps them in the
// auth middleware.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/create", h.HandleCreateOrder)
	checkoutRoutes.Post("/verify", h.HandleVerifyPayment)
}

// HandleCreateOrder computes the caller's cart total and opens a gateway
// order for it, returning the gateway order payload.
func (h *CheckoutHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	order, err := h.service.CreateOrder(c.UserContext(), userID)
	if err != nil {
		log.Printf("Error creating checkout order for user %s: %v", userID, err)
		return fail(c, err)
	}

	return c.JSON(order)
}

// VerifyPaymentRequest carries the gateway's payment confirmation.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// HandleVerifyPayment verifies the gateway signature and clears the caller's
// cart. Safe to call again after success.
func (h *CheckoutHandler) HandleVerifyPayment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing verify request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	if err := h.service.VerifyPayment(userID, req.OrderID, req.PaymentID, req.Signature); err != nil {
		log.Printf("Error verifying payment for user %s: %v", userID, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Payment successful and cart cleared",
	})
}
