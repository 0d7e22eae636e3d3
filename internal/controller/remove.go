package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

// RemoveLine deletes one line after user confirmation. The confirmation
// prompt shows the product's display name. Declining cancels without error.
func (c *CartStateController) RemoveLine(ctx context.Context, lineID string) error {
	line, err := c.line(lineID)
	if err != nil {
		return err
	}

	if !c.confirm.Confirm(fmt.Sprintf(msgConfirmRemoveFmt, line.ProductName)) {
		return nil
	}

	if err := c.cartAPI.DeleteLine(ctx, c.cart.ID, lineID); err != nil {
		log.Printf("delete line %s: %v", lineID, err)
		c.notify.Error(msgRemoveFailed)
		return err
	}

	c.cart.RemoveLine(lineID)
	c.view.RemoveLineRow(lineID)
	if c.cart.IsEmpty() {
		c.view.RenderEmpty()
	}
	c.notify.Success(msgRemoved)
	return c.refreshSummary(ctx)
}

// RemoveSelectedLines deletes every checked available line with one bulk
// call. The button driving this stays disabled until at least one available
// line is selected.
func (c *CartStateController) RemoveSelectedLines(ctx context.Context) error {
	if c.cart == nil {
		return ErrNotLoaded
	}

	count := c.cart.AvailableSelectedCount()
	if count == 0 {
		return ErrNoSelection
	}

	if !c.confirm.Confirm(fmt.Sprintf(msgConfirmBulkFmt, count)) {
		return nil
	}

	if err := c.cartAPI.DeleteSelected(ctx, c.cart.ID); err != nil {
		log.Printf("delete selected lines: %v", err)
		c.notify.Error(msgRemoveFailed)
		return err
	}

	var kept []*domain.CartLine
	for _, l := range c.cart.Lines {
		if l.Selected && l.Available() {
			c.view.RemoveLineRow(l.LineID)
			continue
		}
		kept = append(kept, l)
	}
	c.cart.Lines = kept

	if c.cart.IsEmpty() {
		c.view.RenderEmpty()
	}
	c.view.SetSelectAllState(c.selectAllState())
	c.view.SetBulkDeleteEnabled(false)
	c.notify.Success(fmt.Sprintf(msgRemovedBulkFmt, count))
	return c.refreshSummary(ctx)
}

// RemoveUnavailableLines deletes lines from the "no longer sold" section,
// which has its own selection mode and its own endpoint. Deletion goes one
// id at a time and continues past failures; the outcome is reported as one
// aggregate notification.
func (c *CartStateController) RemoveUnavailableLines(ctx context.Context, ids []string) error {
	if c.cart == nil {
		return ErrNotLoaded
	}

	var removed, failed int
	for _, id := range ids {
		line := c.cart.Line(id)
		if line == nil || line.Available() {
			continue
		}
		if err := c.cartAPI.DeleteUnavailableLine(ctx, c.cart.ID, id); err != nil {
			log.Printf("delete unavailable line %s: %v", id, err)
			failed++
			continue
		}
		c.cart.RemoveLine(id)
		c.view.RemoveLineRow(id)
		removed++
	}

	switch {
	case failed > 0:
		c.notify.Error(fmt.Sprintf(msgGhostsPartialFmt, removed, failed))
	case removed > 0:
		c.notify.Success(fmt.Sprintf(msgRemovedGhostsFmt, removed))
	}

	if c.cart.IsEmpty() {
		c.view.RenderEmpty()
	}
	return c.refreshSummary(ctx)
}
