package controller

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/api"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

// ChangeQuantity handles the +/- buttons. The new value is clamped to
// [1, min(stock, 99)]; when the line is already at a bound no call is made.
func (c *CartStateController) ChangeQuantity(ctx context.Context, lineID string, delta int) error {
	line, err := c.line(lineID)
	if err != nil {
		return err
	}

	next := domain.ClampQuantity(line.Quantity+delta, line.Stock)
	if next == line.Quantity {
		return nil
	}
	return c.SetQuantity(ctx, lineID, next)
}

// SetQuantityFromInput handles direct numeric entry, invoked on blur or
// Enter rather than per keystroke. Empty and zero input is coerced to 1 at
// that point; out-of-range values are clamped and the clamped value is what
// gets sent.
func (c *CartStateController) SetQuantityFromInput(ctx context.Context, lineID, raw string) error {
	line, err := c.line(lineID)
	if err != nil {
		return err
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil || n == 0 {
		n = 1
	}
	return c.SetQuantity(ctx, lineID, domain.ClampQuantity(n, line.Stock))
}

// SetQuantity persists the new quantity. The service response is the source
// of truth for the resulting quantity and line total; nothing is applied
// locally until the call succeeds.
func (c *CartStateController) SetQuantity(ctx context.Context, lineID string, quantity int) error {
	line, err := c.line(lineID)
	if err != nil {
		return err
	}

	res, err := c.cartAPI.UpdateLine(ctx, c.cart.ID, lineID, api.UpdateLineRequest{
		Quantity: quantity,
		Selected: line.Selected,
	})
	if err != nil {
		log.Printf("update quantity for line %s: %v", lineID, err)
		c.notify.Error(msgUpdateFailed)
		return err
	}

	line.Quantity = res.Quantity
	line.LineTotal = res.LineTotal
	return c.refreshSummary(ctx)
}
