package services_test

import (
	"context"
	"fmt"
	"testing"

	"sapling/internal/models"
	"sapling/internal/repositories"
	"sapling/internal/services"
	"sapling/pkg/razorpay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPaymentGateway is a mock implementation of services.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.Order, error) {
	args := m.Called(ctx, amount, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*razorpay.Order), args.Error(1)
}

func (m *MockPaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCheckoutEvent(event string, payload map[string]interface{}) error {
	args := m.Called(event, payload)
	return args.Error(0)
}

// newCheckoutFixture wires a checkout service over in-memory repositories
// with one user holding 5 units of a 10000-paise plant (total 50000).
func newCheckoutFixture(t *testing.T) (*services.CheckoutService, *MockPaymentGateway, *MockEventPublisher, *services.CartService, string) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	plantRepo := repositories.NewMockPlantRepository()

	user := &models.User{Username: "alice", Email: "a@x.com", Password: "hash", Role: models.RoleUser}
	assert.NoError(t, userRepo.Create(user))
	plant := &models.Plant{Name: "Monstera", Category: "Indoor", Price: 10000}
	assert.NoError(t, plantRepo.Create(plant))

	cartService := services.NewCartService(userRepo, plantRepo)
	_, err := cartService.AddToCart(user.ID, plant.ID, 5)
	assert.NoError(t, err)

	gateway := new(MockPaymentGateway)
	publisher := new(MockEventPublisher)
	checkoutService := services.NewCheckoutService(cartService, gateway, publisher, "INR", 100)

	return checkoutService, gateway, publisher, cartService, user.ID
}

func TestCheckoutService_CreateOrder(t *testing.T) {
	checkoutService, gateway, publisher, _, userID := newCheckoutFixture(t)

	gatewayOrder := &razorpay.Order{ID: "order_test123", Amount: 50000, Currency: "INR", Status: "created"}
	gateway.On("CreateOrder", mock.Anything, int64(50000), "INR", mock.AnythingOfType("string")).Return(gatewayOrder, nil).Once()
	publisher.On("PublishCheckoutEvent", "checkout.created", mock.Anything).Return(nil).Once()

	order, err := checkoutService.CreateOrder(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	gateway.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutService_EmptyCartNeverReachesGateway(t *testing.T) {
	checkoutService, gateway, _, cartService, userID := newCheckoutFixture(t)

	assert.NoError(t, cartService.Clear(userID))

	_, err := checkoutService.CreateOrder(context.Background(), userID)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
	gateway.AssertNotCalled(t, "CreateOrder")
}

func TestCheckoutService_GatewayFailureLeavesCartIntact(t *testing.T) {
	checkoutService, gateway, _, cartService, userID := newCheckoutFixture(t)

	gateway.On("CreateOrder", mock.Anything, int64(50000), "INR", mock.AnythingOfType("string")).
		Return(nil, fmt.Errorf("connection refused")).Once()

	_, err := checkoutService.CreateOrder(context.Background(), userID)
	assert.ErrorIs(t, err, models.ErrGatewayUnavailable)

	lines, err := cartService.Snapshot(userID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCheckoutService_CreateOrderUsesCurrentPrice(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	plantRepo := repositories.NewMockPlantRepository()

	user := &models.User{Username: "bob", Email: "b@x.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(user))
	plant := &models.Plant{Name: "Fern", Category: "Indoor", Price: 100}
	assert.NoError(t, plantRepo.Create(plant))

	cartService := services.NewCartService(userRepo, plantRepo)
	_, err := cartService.AddToCart(user.ID, plant.ID, 2)
	assert.NoError(t, err)

	// Reprice after the line was added; the checkout total must follow.
	plant.Price = 300
	assert.NoError(t, plantRepo.Update(plant))

	gateway := new(MockPaymentGateway)
	gateway.On("CreateOrder", mock.Anything, int64(600), "INR", mock.AnythingOfType("string")).
		Return(&razorpay.Order{ID: "order_fresh", Amount: 600, Currency: "INR"}, nil).Once()

	checkoutService := services.NewCheckoutService(cartService, gateway, nil, "INR", 100)
	order, err := checkoutService.CreateOrder(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(600), order.Amount)
	gateway.AssertExpectations(t)
}

func TestCheckoutService_VerifyPaymentClearsCart(t *testing.T) {
	checkoutService, gateway, publisher, cartService, userID := newCheckoutFixture(t)

	gateway.On("VerifySignature", "order_test123", "pay_abc", "sig_ok").Return(true)
	publisher.On("PublishCheckoutEvent", "checkout.completed", mock.Anything).Return(nil)

	err := checkoutService.VerifyPayment(userID, "order_test123", "pay_abc", "sig_ok")
	assert.NoError(t, err)

	lines, err := cartService.Snapshot(userID)
	assert.NoError(t, err)
	assert.Empty(t, lines)

	// A second verify for the already-cleared cart is a no-op success.
	err = checkoutService.VerifyPayment(userID, "order_test123", "pay_abc", "sig_ok")
	assert.NoError(t, err)

	lines, err = cartService.Snapshot(userID)
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCheckoutService_VerifyPaymentRejectsBadSignature(t *testing.T) {
	checkoutService, gateway, _, cartService, userID := newCheckoutFixture(t)

	gateway.On("VerifySignature", "order_test123", "pay_abc", "sig_forged").Return(false).Once()

	err := checkoutService.VerifyPayment(userID, "order_test123", "pay_abc", "sig_forged")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	// A forged confirmation must not touch the cart.
	lines, err := cartService.Snapshot(userID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCheckoutService_VerifyPaymentValidation(t *testing.T) {
	checkoutService, gateway, _, _, userID := newCheckoutFixture(t)

	err := checkoutService.VerifyPayment(userID, "", "pay_abc", "sig")
	assert.ErrorIs(t, err, models.ErrValidation)
	gateway.AssertNotCalled(t, "VerifySignature")
}
