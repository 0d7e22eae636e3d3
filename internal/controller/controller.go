package controller

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/api"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

// CartStateController mediates between user actions and the remote cart
// service. It keeps a local mirror of the cart lines so the view can be
// redrawn without a full reload after every edit, but money is never
// computed locally: line totals and the subtotal always come from the
// service response.
//
// The controller follows the page's single-thread model and is not safe for
// concurrent use. The mirror is only mutated after a remote call has
// succeeded; a failed call leaves state exactly as it was.
type CartStateController struct {
	cartAPI     api.CartAPI
	discountAPI api.DiscountAPI
	view        CartView
	notify      Notifier
	confirm     Confirmer

	cart     *domain.Cart
	discount *domain.Discount
	summary  domain.Summary

	loadGroup singleflight.Group // collapses overlapping loads
}

func NewCartStateController(cartAPI api.CartAPI, discountAPI api.DiscountAPI, view CartView, notify Notifier, confirm Confirmer) *CartStateController {
	return &CartStateController{
		cartAPI:     cartAPI,
		discountAPI: discountAPI,
		view:        view,
		notify:      notify,
		confirm:     confirm,
	}
}

// LoadCart fetches the current cart id and all of its lines, replacing the
// local mirror wholesale. On any failure it renders the empty-cart state and
// reports via toast; there is no automatic retry.
func (c *CartStateController) LoadCart(ctx context.Context) error {
	v, err, _ := c.loadGroup.Do("load", func() (interface{}, error) {
		cartID, err := c.cartAPI.CurrentCart(ctx)
		if err != nil {
			return nil, err
		}
		lines, err := c.cartAPI.ListLines(ctx, cartID)
		if err != nil {
			return nil, err
		}
		return &domain.Cart{ID: cartID, Lines: lines}, nil
	})
	if err != nil {
		log.Printf("load cart: %v", err)
		c.view.RenderEmpty()
		c.notify.Error(msgLoadFailed)
		return err
	}

	c.cart = v.(*domain.Cart)
	c.render()
	return c.refreshSummary(ctx)
}

// Cart exposes the local mirror, mainly for views and tests.
func (c *CartStateController) Cart() *domain.Cart { return c.cart }

// Summary returns the totals as last rendered.
func (c *CartStateController) Summary() domain.Summary { return c.summary }

// Discount returns the currently applied discount, or nil.
func (c *CartStateController) Discount() *domain.Discount { return c.discount }

func (c *CartStateController) render() {
	if c.cart.IsEmpty() {
		c.view.RenderEmpty()
		return
	}
	c.view.RenderCart(c.cart)
	c.view.SetSelectAllState(c.selectAllState())
	c.view.SetBulkDeleteEnabled(c.cart.AvailableSelectedCount() > 0)
}

func (c *CartStateController) line(lineID string) (*domain.CartLine, error) {
	if c.cart == nil {
		return nil, ErrNotLoaded
	}
	l := c.cart.Line(lineID)
	if l == nil {
		return nil, ErrLineNotFound
	}
	return l, nil
}

// refreshSummary re-derives the display totals. The subtotal is fetched from
// the service rather than summed here; rounding and promotional pricing live
// server-side only. If a discount is active it is re-validated against the
// new subtotal in the same step, and cleared when it no longer applies.
func (c *CartStateController) refreshSummary(ctx context.Context) error {
	if c.cart == nil {
		return ErrNotLoaded
	}

	var subtotal int64
	if !c.cart.IsEmpty() {
		st, err := c.cartAPI.Subtotal(ctx, c.cart.ID)
		if err != nil {
			log.Printf("fetch cart subtotal: %v", err)
			c.notify.Error(msgLoadTotalFailed)
			return err
		}
		subtotal = st
	}

	var discountAmount int64
	if c.discount != nil {
		amount, err := c.discountAPI.Apply(ctx, c.discount.Code, subtotal)
		if err != nil {
			code := c.discount.Code
			c.discount = nil
			log.Printf("reapply discount %s: %v", code, err)
			c.notify.Info(fmt.Sprintf(msgDiscountClearedFmt, code))
		} else {
			c.discount.Amount = amount
			discountAmount = amount
		}
	}

	c.summary = domain.Summary{
		SelectedCount:          c.cart.SelectedCount(),
		AvailableSelectedCount: c.cart.AvailableSelectedCount(),
		Subtotal:               subtotal,
		DiscountAmount:         discountAmount,
		Total:                  subtotal - discountAmount,
	}
	c.view.RenderSummary(c.summary, c.advisory())
	return nil
}

func (c *CartStateController) advisory() string {
	if c.summary.SelectedCount > c.summary.AvailableSelectedCount {
		return msgAdvisoryDropped
	}
	return ""
}

func (c *CartStateController) selectAllState() SelectAllState {
	avail := c.cart.AvailableCount()
	selected := c.cart.AvailableSelectedCount()
	switch {
	case avail == 0 || selected == 0:
		return SelectAllUnchecked
	case selected == avail:
		return SelectAllChecked
	default:
		return SelectAllIndeterminate
	}
}
