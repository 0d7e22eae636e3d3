package controller

import "errors"

var (
	ErrNotLoaded       = errors.New("cart has not been loaded")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrLineUnavailable = errors.New("cart line is unavailable")
	ErrNoSelection     = errors.New("no available line is selected")
	ErrDiscountActive  = errors.New("a discount code is already applied")
)
