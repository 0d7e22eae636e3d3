package controller

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/api"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

// ApplyDiscount validates a code against the current subtotal. At most one
// code may be active; the current one has to be removed before a new one is
// accepted. Business rejections surface the service's message verbatim when
// it provided one.
func (c *CartStateController) ApplyDiscount(ctx context.Context, code string) error {
	if c.cart == nil {
		return ErrNotLoaded
	}
	if c.discount != nil {
		c.notify.Error(msgDiscountActive)
		return ErrDiscountActive
	}

	code = strings.TrimSpace(code)
	amount, err := c.discountAPI.Apply(ctx, code, c.summary.Subtotal)
	if err != nil {
		log.Printf("apply discount %s: %v", code, err)
		if msg := api.ServerMessage(err); msg != "" {
			c.notify.Error(msg)
		} else {
			c.notify.Error(msgDiscountInvalid)
		}
		return err
	}

	c.discount = &domain.Discount{Code: code, Amount: amount}
	c.summary.DiscountAmount = amount
	c.summary.Total = c.summary.Subtotal - amount
	c.view.RenderSummary(c.summary, c.advisory())
	c.notify.Success(fmt.Sprintf(msgDiscountAppliedFmt, code))
	return nil
}

// RemoveDiscount clears the applied code. The discount service holds no
// per-cart state, so this is a purely local operation.
func (c *CartStateController) RemoveDiscount() {
	if c.discount == nil {
		return
	}
	c.discount = nil
	c.summary.DiscountAmount = 0
	c.summary.Total = c.summary.Subtotal
	c.view.RenderSummary(c.summary, c.advisory())
	c.notify.Info(msgDiscountRemoved)
}
