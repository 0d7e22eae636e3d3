// Package cartstub is an in-memory stand-in for the cart and discount
// services, used by tests and the local dev server. It speaks the same wire
// contract the storefront backend does.
package cartstub

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/api"
	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("quantity out of range")
	ErrLineStillSold   = errors.New("line is still sold, use the normal delete")
	ErrUnknownCode     = errors.New("Mã giảm giá không tồn tại hoặc đã hết hạn.")
	ErrBelowMinimum    = errors.New("Đơn hàng chưa đạt giá trị tối thiểu để áp dụng mã.")
)

// Product is the catalog snapshot the cart joins against.
type Product struct {
	ID        string
	Name      string
	BrandID   string
	BrandName string
	ImageURL  string
	Price     int64
	Stock     int
	Active    bool
}

// DiscountRule is a percentage code with an optional cap and minimum.
type DiscountRule struct {
	Code        string
	Percent     int
	MaxAmount   int64
	MinSubtotal int64
}

type cartLine struct {
	id        string
	productID string
	quantity  int
	selected  bool
}

// Store holds one cart per instance, which is all the storefront session
// model needs.
type Store struct {
	mu        sync.RWMutex
	cartID    string
	lines     []*cartLine
	products  map[string]*Product
	discounts map[string]DiscountRule
}

func NewStore() *Store {
	return &Store{
		cartID:    uuid.NewString(),
		products:  make(map[string]*Product),
		discounts: make(map[string]DiscountRule),
	}
}

func (s *Store) AddProduct(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.products[p.ID] = &cp
}

func (s *Store) AddDiscount(rule DiscountRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discounts[rule.Code] = rule
}

// AddLine puts a product into the cart and returns the assigned line id.
func (s *Store) AddLine(productID string, quantity int, selected bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return "", fmt.Errorf("unknown product %s", productID)
	}
	l := &cartLine{
		id:        uuid.NewString(),
		productID: productID,
		quantity:  quantity,
		selected:  selected,
	}
	s.lines = append(s.lines, l)
	return l.id, nil
}

func (s *Store) CurrentCart() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartID
}

func (s *Store) Lines(cartID string) ([]api.CartLineDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cartID != s.cartID {
		return nil, ErrCartNotFound
	}
	out := make([]api.CartLineDTO, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, s.toDTO(l))
	}
	return out, nil
}

// Subtotal sums the selected, available lines. This is the single source of
// truth for pricing; clients never sum locally.
func (s *Store) Subtotal(cartID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cartID != s.cartID {
		return 0, ErrCartNotFound
	}
	var total int64
	for _, l := range s.lines {
		p := s.products[l.productID]
		if l.selected && p.Active && p.Stock > 0 {
			total += int64(l.quantity) * p.Price
		}
	}
	return total, nil
}

func (s *Store) UpdateLine(cartID, lineID string, quantity int, selected bool) (api.UpdateLineResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cartID != s.cartID {
		return api.UpdateLineResult{}, ErrCartNotFound
	}
	l := s.find(lineID)
	if l == nil {
		return api.UpdateLineResult{}, ErrLineNotFound
	}
	p := s.products[l.productID]
	if quantity < 1 || quantity > domain.MaxQuantityPerLine || quantity > p.Stock {
		return api.UpdateLineResult{}, ErrInvalidQuantity
	}
	l.quantity = quantity
	l.selected = selected
	return api.UpdateLineResult{
		Quantity:  quantity,
		LineTotal: int64(quantity) * p.Price,
	}, nil
}

func (s *Store) DeleteLine(cartID, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cartID != s.cartID {
		return ErrCartNotFound
	}
	return s.remove(lineID)
}

// DeleteSelected drops every selected line that is still sold. Unavailable
// lines with a stale selected flag are left for the dedicated endpoint.
func (s *Store) DeleteSelected(cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cartID != s.cartID {
		return ErrCartNotFound
	}
	var kept []*cartLine
	for _, l := range s.lines {
		p := s.products[l.productID]
		if l.selected && p.Active && p.Stock > 0 {
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	return nil
}

func (s *Store) DeleteUnavailable(cartID, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cartID != s.cartID {
		return ErrCartNotFound
	}
	l := s.find(lineID)
	if l == nil {
		return ErrLineNotFound
	}
	p := s.products[l.productID]
	if p.Active && p.Stock > 0 {
		return ErrLineStillSold
	}
	return s.remove(lineID)
}

// ApplyDiscount validates a code against an order total and returns the
// discount amount. Percentage codes are capped and threshold codes reject
// totals below their minimum.
func (s *Store) ApplyDiscount(code string, orderTotal int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rule, ok := s.discounts[code]
	if !ok {
		return 0, ErrUnknownCode
	}
	if orderTotal < rule.MinSubtotal {
		return 0, ErrBelowMinimum
	}
	amount := orderTotal * int64(rule.Percent) / 100
	if rule.MaxAmount > 0 && amount > rule.MaxAmount {
		amount = rule.MaxAmount
	}
	return amount, nil
}

func (s *Store) find(lineID string) *cartLine {
	for _, l := range s.lines {
		if l.id == lineID {
			return l
		}
	}
	return nil
}

func (s *Store) remove(lineID string) error {
	for i, l := range s.lines {
		if l.id == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (s *Store) toDTO(l *cartLine) api.CartLineDTO {
	p := s.products[l.productID]
	return api.CartLineDTO{
		IDCartProduct: l.id,
		IDProduct:     p.ID,
		Quantity:      l.quantity,
		ProductPrice:  p.Price,
		TotalPrice:    int64(l.quantity) * p.Price,
		Choose:        l.selected,
		Available:     p.Active,
		IsActive:      p.Active,
		Stock:         p.Stock,
		ProductName:   p.Name,
		BrandName:     p.BrandName,
		BrandID:       p.BrandID,
		MainImageURL:  p.ImageURL,
	}
}
