package models

import "fmt"

// CheckoutState is one step of the checkout flow. A checkout attempt moves
// strictly forward through the states below; Failed is reachable from any
// non-terminal state.
type CheckoutState string

const (
	CheckoutIdle              CheckoutState = "idle"
	CheckoutOrderRequested    CheckoutState = "order_requested"
	CheckoutOrderCreated      CheckoutState = "order_created"
	CheckoutPaymentAuthorized CheckoutState = "payment_authorized"
	CheckoutCartCleared       CheckoutState = "cart_cleared" // terminal success
	CheckoutFailed            CheckoutState = "failed"       // terminal failure
)

// validNext lists the single legal forward move from each state.
var validNext = map[CheckoutState]CheckoutState{
	CheckoutIdle:              CheckoutOrderRequested,
	CheckoutOrderRequested:    CheckoutOrderCreated,
	CheckoutOrderCreated:      CheckoutPaymentAuthorized,
	CheckoutPaymentAuthorized: CheckoutCartCleared,
}

// CheckoutAttempt tracks one checkout through the state machine. It exists
// only for the duration of the attempt and is never persisted; the gateway
// order is the only durable record of an in-flight checkout.
type CheckoutAttempt struct {
	UserID string        `json:"userId"`
	State  CheckoutState `json:"state"`
	Reason string        `json:"reason,omitempty"` // set on the transition to failed
}

// NewCheckoutAttempt starts an attempt in the idle state.
func NewCheckoutAttempt(userID string) *CheckoutAttempt {
	return &CheckoutAttempt{UserID: userID, State: CheckoutIdle}
}

// Advance moves the attempt to next, rejecting any move the state machine
// does not allow.
func (a *CheckoutAttempt) Advance(next CheckoutState) error {
	if validNext[a.State] != next {
		return fmt.Errorf("illegal checkout transition %s -> %s", a.State, next)
	}
	a.State = next
	return nil
}

// Fail marks the attempt as terminally failed with a reason. Failing a
// terminal attempt is a no-op.
func (a *CheckoutAttempt) Fail(reason string) {
	if a.State == CheckoutCartCleared || a.State == CheckoutFailed {
		return
	}
	a.State = CheckoutFailed
	a.Reason = reason
}

// CartItem is a cart line joined with the current catalog snapshot of its
// plant, for display and total computation. Depleted marks a line whose plant
// has been removed from the catalog since it was added; depleted lines carry
// no subtotal.
type CartItem struct {
	PlantID   string `json:"plantId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
	Depleted  bool   `json:"depleted"`
}

// CheckoutOrder is the transient result of opening a gateway order. Amount is
// in minor currency units.
type CheckoutOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
