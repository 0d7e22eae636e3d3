package controller

import "github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"

// SelectAllState is the visual state of the "select all" checkbox.
type SelectAllState int

const (
	SelectAllUnchecked SelectAllState = iota
	SelectAllChecked
	SelectAllIndeterminate
)

// Notifier is the toast sink. It is the only user-visible channel for
// success and failure of remote calls.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// CartView renders the cart. The controller pushes state into it after every
// confirmed mutation; the view never reads back.
type CartView interface {
	RenderCart(cart *domain.Cart)
	RenderEmpty()
	RenderSummary(s domain.Summary, advisory string)
	SetSelectAllState(state SelectAllState)
	SetBulkDeleteEnabled(enabled bool)
	RemoveLineRow(lineID string)
}

// Confirmer asks the user before a destructive action. Returning false
// cancels the action without an error.
type Confirmer interface {
	Confirm(prompt string) bool
}
