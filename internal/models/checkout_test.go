package models_test

import (
	"testing"

	"sapling/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutAttempt_AdvancesInOrder(t *testing.T) {
	attempt := models.NewCheckoutAttempt("u1")
	assert.Equal(t, models.CheckoutIdle, attempt.State)

	assert.NoError(t, attempt.Advance(models.CheckoutOrderRequested))
	assert.NoError(t, attempt.Advance(models.CheckoutOrderCreated))
	assert.NoError(t, attempt.Advance(models.CheckoutPaymentAuthorized))
	assert.NoError(t, attempt.Advance(models.CheckoutCartCleared))
}

func TestCheckoutAttempt_RejectsSkippedStates(t *testing.T) {
	attempt := models.NewCheckoutAttempt("u1")

	// Cannot jump straight to a cleared cart.
	assert.Error(t, attempt.Advance(models.CheckoutCartCleared))
	assert.Error(t, attempt.Advance(models.CheckoutPaymentAuthorized))
	assert.Equal(t, models.CheckoutIdle, attempt.State)

	// Cannot move backwards.
	assert.NoError(t, attempt.Advance(models.CheckoutOrderRequested))
	assert.Error(t, attempt.Advance(models.CheckoutOrderRequested))
}

func TestCheckoutAttempt_FailFromAnyNonTerminalState(t *testing.T) {
	attempt := models.NewCheckoutAttempt("u1")
	assert.NoError(t, attempt.Advance(models.CheckoutOrderRequested))

	attempt.Fail("gateway error")
	assert.Equal(t, models.CheckoutFailed, attempt.State)
	assert.Equal(t, "gateway error", attempt.Reason)

	// Terminal states stay terminal.
	assert.Error(t, attempt.Advance(models.CheckoutOrderCreated))

	cleared := &models.CheckoutAttempt{UserID: "u1", State: models.CheckoutCartCleared}
	cleared.Fail("too late")
	assert.Equal(t, models.CheckoutCartCleared, cleared.State)
	assert.Empty(t, cleared.Reason)
}

func TestRoleSatisfies(t *testing.T) {
	assert.True(t, models.RoleUser.Satisfies(models.RoleUser))
	assert.True(t, models.RoleAdmin.Satisfies(models.RoleUser))
	assert.True(t, models.RoleAdmin.Satisfies(models.RoleAdmin))
	assert.False(t, models.RoleUser.Satisfies(models.RoleAdmin))
	assert.False(t, models.Role("").Satisfies(models.RoleUser))
}
