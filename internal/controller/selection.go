package controller

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/api"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

// SetSelection toggles whether a line counts toward checkout. The update
// endpoint is not field-granular, so the line's current quantity is sent
// alongside the new selection value. Unavailable lines cannot be toggled
// through this path.
func (c *CartStateController) SetSelection(ctx context.Context, lineID string, selected bool) error {
	line, err := c.line(lineID)
	if err != nil {
		return err
	}
	if !line.Available() {
		return ErrLineUnavailable
	}

	res, err := c.cartAPI.UpdateLine(ctx, c.cart.ID, lineID, api.UpdateLineRequest{
		Quantity: line.Quantity,
		Selected: selected,
	})
	if err != nil {
		log.Printf("update selection for line %s: %v", lineID, err)
		c.notify.Error(msgUpdateFailed)
		return err
	}

	line.Selected = selected
	line.LineTotal = res.LineTotal
	c.view.SetSelectAllState(c.selectAllState())
	c.view.SetBulkDeleteEnabled(c.cart.AvailableSelectedCount() > 0)
	return c.refreshSummary(ctx)
}

// SelectAll applies the selection to every available line concurrently and
// waits for all calls to settle before recomputing the summary. Lines whose
// update failed keep their previous selection.
func (c *CartStateController) SelectAll(ctx context.Context, selected bool) error {
	if c.cart == nil {
		return ErrNotLoaded
	}

	var targets []*domain.CartLine
	for _, l := range c.cart.Lines {
		if l.Available() {
			targets = append(targets, l)
		}
	}

	results := make([]api.UpdateLineResult, len(targets))
	failures := make([]error, len(targets))

	// Plain errgroup, no shared context cancellation: one failed line must
	// not abort the in-flight updates for the others.
	var g errgroup.Group
	for i, l := range targets {
		i, l := i, l
		g.Go(func() error {
			res, err := c.cartAPI.UpdateLine(ctx, c.cart.ID, l.LineID, api.UpdateLineRequest{
				Quantity: l.Quantity,
				Selected: selected,
			})
			if err != nil {
				failures[i] = err
				return err
			}
			results[i] = res
			return nil
		})
	}
	waitErr := g.Wait()

	for i, l := range targets {
		if failures[i] == nil {
			l.Selected = selected
			l.LineTotal = results[i].LineTotal
		}
	}

	c.view.SetSelectAllState(c.selectAllState())
	c.view.SetBulkDeleteEnabled(c.cart.AvailableSelectedCount() > 0)

	if waitErr != nil {
		log.Printf("select all: %v", waitErr)
		c.notify.Error(msgSelectAllFailed)
	}
	if err := c.refreshSummary(ctx); err != nil {
		return err
	}
	return waitErr
}
