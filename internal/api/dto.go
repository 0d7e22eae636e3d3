package api

import "github.com/1440isme/Liora-Mom-Baby-sub002/internal/domain"

// CartLineDTO is the line object as the cart service serializes it.
type CartLineDTO struct {
	IDCartProduct string `json:"idCartProduct"`
	IDProduct     string `json:"idProduct"`
	Quantity      int    `json:"quantity"`
	ProductPrice  int64  `json:"productPrice"`
	TotalPrice    int64  `json:"totalPrice"`
	Choose        bool   `json:"choose"`
	Available     bool   `json:"available"`
	IsActive      bool   `json:"isActive"`
	Stock         int    `json:"stock"`
	ProductName   string `json:"productName"`
	BrandName     string `json:"brandName"`
	BrandID       string `json:"brandId"`
	MainImageURL  string `json:"mainImageUrl"`
}

type currentCartDTO struct {
	CartID string `json:"cartId"`
}

type applyDiscountRequestDTO struct {
	DiscountCode string `json:"discountCode"`
	OrderTotal   int64  `json:"orderTotal"`
}

type applyDiscountResponseDTO struct {
	Result struct {
		DiscountAmount int64 `json:"discountAmount"`
	} `json:"result"`
}

// ToDomain converts the wire representation into the local mirror line.
// An unpublished or deactivated product outranks an empty stock count.
func (d CartLineDTO) ToDomain() *domain.CartLine {
	return &domain.CartLine{
		LineID:       d.IDCartProduct,
		ProductID:    d.IDProduct,
		ProductName:  d.ProductName,
		BrandID:      d.BrandID,
		BrandName:    d.BrandName,
		ImageURL:     d.MainImageURL,
		Quantity:     d.Quantity,
		UnitPrice:    d.ProductPrice,
		LineTotal:    d.TotalPrice,
		Selected:     d.Choose,
		Stock:        d.Stock,
		Availability: domain.DeriveAvailability(d.IsActive && d.Available, d.Stock),
	}
}

// FromDomain builds the wire representation of a line. The stub service and
// tests use it; the client itself only reads lines.
func FromDomain(l *domain.CartLine) CartLineDTO {
	return CartLineDTO{
		IDCartProduct: l.LineID,
		IDProduct:     l.ProductID,
		Quantity:      l.Quantity,
		ProductPrice:  l.UnitPrice,
		TotalPrice:    l.LineTotal,
		Choose:        l.Selected,
		Available:     l.Availability != domain.Deactivated,
		IsActive:      l.Availability != domain.Deactivated,
		Stock:         l.Stock,
		ProductName:   l.ProductName,
		BrandName:     l.BrandName,
		BrandID:       l.BrandID,
		MainImageURL:  l.ImageURL,
	}
}
