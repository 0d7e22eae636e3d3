package controller

import "context"

// ValidateBeforeCheckout decides whether navigation to checkout may proceed.
// With no available selected line it blocks and reports via toast. When some
// selected lines are unavailable it informs the user that those will be
// dropped and proceeds anyway.
func (c *CartStateController) ValidateBeforeCheckout(ctx context.Context) error {
	if c.cart == nil {
		return ErrNotLoaded
	}

	available := c.cart.AvailableSelectedCount()
	if available == 0 {
		c.notify.Error(msgCheckoutNoLines)
		return ErrNoSelection
	}
	if c.cart.SelectedCount() > available {
		c.notify.Info(msgAdvisoryDropped)
	}
	return nil
}
