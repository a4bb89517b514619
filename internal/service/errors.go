package service

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrOrderNotFound      = errors.New("order not found")
	ErrItemNotFound       = errors.New("referenced item not found")
	ErrEmptyItems         = errors.New("empty items")
	ErrQuantityInvalid    = errors.New("quantity must be > 0")
	ErrUnknownItemKind    = errors.New("unknown item kind")
	ErrRestaurantRequired = errors.New("restaurant id is required")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrStatusConflict     = errors.New("order status changed concurrently")
	ErrDeleteUnsupported  = errors.New("order deletion is not supported")
)
