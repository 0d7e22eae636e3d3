package api

import (
	"context"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

// CartAPI is the slice of the cart service the controller consumes. The
// update endpoint is not field-granular: quantity and selection always
// travel together.
type CartAPI interface {
	CurrentCart(ctx context.Context) (string, error)
	ListLines(ctx context.Context, cartID string) ([]*domain.CartLine, error)
	Subtotal(ctx context.Context, cartID string) (int64, error)
	UpdateLine(ctx context.Context, cartID, lineID string, req UpdateLineRequest) (UpdateLineResult, error)
	DeleteLine(ctx context.Context, cartID, lineID string) error
	DeleteSelected(ctx context.Context, cartID string) error
	DeleteUnavailableLine(ctx context.Context, cartID, lineID string) error
}

// DiscountAPI validates a code against a subtotal and returns the resulting
// discount amount. The service holds no per-cart state, so re-validation is
// just another Apply with the new subtotal.
type DiscountAPI interface {
	Apply(ctx context.Context, code string, subtotal int64) (int64, error)
}

// UpdateLineRequest carries both mutable line fields on every update, per
// the service contract.
type UpdateLineRequest struct {
	Quantity int  `json:"quantity"`
	Selected bool `json:"choose"`
}

// UpdateLineResult is the authoritative post-update state for the line.
type UpdateLineResult struct {
	Quantity  int   `json:"quantity"`
	LineTotal int64 `json:"totalPrice"`
}
