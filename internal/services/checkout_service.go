package services

import (
	"context"
	"fmt"
	"log"

	"sapling/internal/models"
	"sapling/pkg/razorpay"
)

// PaymentGateway is the checkout service's view of the payment provider.
// *razorpay.Client satisfies it; tests substitute a mock.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// EventPublisher publishes checkout lifecycle events. *rabbitmq.Client
// satisfies it. A nil publisher disables events.
type EventPublisher interface {
	PublishCheckoutEvent(event string, payload map[string]interface{}) error
}

// CheckoutService drives a checkout attempt through its state machine:
//
//	idle -> order_requested -> order_created -> payment_authorized -> cart_cleared
//
// with failed reachable from any non-terminal state. CreateOrder covers the
// first two transitions; the gateway collects payment out-of-band on the
// client device; VerifyPayment covers the last two.
type CheckoutService struct {
	cart      *CartService
	gateway   PaymentGateway
	publisher EventPublisher
	currency  string
	minAmount int64 // minimum chargeable total in minor currency units
}

// NewCheckoutService creates a new CheckoutService. currency defaults to INR
// and minAmount to 100 minor units (one rupee).
func NewCheckoutService(cart *CartService, gateway PaymentGateway, publisher EventPublisher, currency string, minAmount int64) *CheckoutService {
	if currency == "" {
		currency = "INR"
	}
	if minAmount <= 0 {
		minAmount = 100
	}
	return &CheckoutService{
		cart:      cart,
		gateway:   gateway,
		publisher: publisher,
		currency:  currency,
		minAmount: minAmount,
	}
}

// CreateOrder computes the chargeable total from the user's current cart and
// opens a gateway order for it. Prices are read fresh from the catalog here,
// never cached from add-to-cart time; depleted lines contribute nothing. No
// local state is mutated, so a gateway failure leaves the cart intact.
func (s *CheckoutService) CreateOrder(ctx context.Context, userID string) (*razorpay.Order, error) {
	attempt := models.NewCheckoutAttempt(userID)
	if err := attempt.Advance(models.CheckoutOrderRequested); err != nil {
		return nil, err
	}

	lines, err := s.cart.Snapshot(userID)
	if err != nil {
		attempt.Fail(err.Error())
		return nil, err
	}

	_, total, err := s.cart.joinCart(lines)
	if err != nil {
		attempt.Fail(err.Error())
		return nil, err
	}

	// An empty cart always lands here: its total is zero.
	if total < s.minAmount {
		attempt.Fail("total below minimum")
		return nil, fmt.Errorf("cart total %d is below the %d minimum: %w", total, s.minAmount, models.ErrInvalidAmount)
	}

	order, err := s.gateway.CreateOrder(ctx, total, s.currency, fmt.Sprintf("cart-%s", userID))
	if err != nil {
		attempt.Fail("gateway error")
		return nil, fmt.Errorf("%w: %v", models.ErrGatewayUnavailable, err)
	}
	if err := attempt.Advance(models.CheckoutOrderCreated); err != nil {
		return nil, err
	}

	s.publish("checkout.created", map[string]interface{}{
		"userId":   userID,
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})

	log.Printf("Checkout order %s created for user %s (%d %s)", order.ID, userID, order.Amount, order.Currency)
	return order, nil
}

// VerifyPayment finishes a checkout: the gateway's signature over the order
// and payment ids is verified before anything is mutated, so a forged
// confirmation never clears a cart. On success the cart is emptied in a
// single storage update. Clearing is idempotent: verifying an already-cleared
// cart succeeds again.
func (s *CheckoutService) VerifyPayment(userID, orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("order id, payment id and signature are required: %w", models.ErrValidation)
	}

	// Resume the attempt where the gateway handed control back to the client:
	// the order exists and the client claims payment was collected.
	attempt := &models.CheckoutAttempt{UserID: userID, State: models.CheckoutOrderCreated}

	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		attempt.Fail("signature mismatch")
		return fmt.Errorf("payment signature mismatch for order %s: %w", orderID, models.ErrUnauthorized)
	}
	if err := attempt.Advance(models.CheckoutPaymentAuthorized); err != nil {
		return err
	}

	if err := s.cart.Clear(userID); err != nil {
		attempt.Fail(err.Error())
		return err
	}
	if err := attempt.Advance(models.CheckoutCartCleared); err != nil {
		return err
	}

	s.publish("checkout.completed", map[string]interface{}{
		"userId":    userID,
		"orderId":   orderID,
		"paymentId": paymentID,
	})

	log.Printf("Payment for order %s verified, cart cleared for user %s", orderID, userID)
	return nil
}

// publish sends a checkout event, logging rather than failing the checkout
// when the broker is unavailable.
func (s *CheckoutService) publish(event string, payload map[string]interface{}) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	if err := s.publisher.PublishCheckoutEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
