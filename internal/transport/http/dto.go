package http

import "restaurant-service/internal/service"

// BaseError — универсальный корневой формат ошибки.
// Code — машинно-ориентированный код (snake_case),
// Message — краткое человеко-читаемое описание,
// Details — дополнительная строка (пояснение).
type BaseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewValidationError(msg string) BaseError {
	return BaseError{Code: "validation_error", Message: msg}
}
func NewUnauthorizedError(msg string) BaseError {
	return BaseError{Code: "unauthorized", Message: msg}
}
func NewForbiddenError(msg string) BaseError {
	return BaseError{Code: "forbidden", Message: msg}
}
func NewNotFoundError(msg string) BaseError {
	return BaseError{Code: "not_found", Message: msg}
}
func NewConflictError(msg string) BaseError {
	return BaseError{Code: "conflict", Message: msg}
}
func NewNotImplementedError(msg string) BaseError {
	return BaseError{Code: "not_implemented", Message: msg}
}
func NewInternalError(details string) BaseError {
	return BaseError{Code: "internal_error", Message: "internal server error", Details: details}
}

type CreateOrderItemRequest struct {
	ItemID   string `json:"itemId" binding:"required,uuid"`
	Quantity uint32 `json:"quantity" binding:"required,min=1"`
	Kind     string `json:"kind" binding:"required,oneof=dish drink"`
}

type CreateOrderRequest struct {
	City          string                   `json:"city" binding:"required,min=2,max=50"`
	Address       string                   `json:"address" binding:"required,min=5,max=100"`
	PhoneNumber   string                   `json:"phoneNumber" binding:"required,min=8,max=16"`
	RestaurantID  string                   `json:"restaurantId" binding:"required,uuid"`
	Items         []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                   `json:"paymentMethod" binding:"omitempty,min=3,max=20"`
	PaymentStatus string                   `json:"paymentStatus" binding:"omitempty,min=3,max=20"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing ready delivered cancelled"`
}

type ListOrdersResponse struct {
	Orders []service.DisplayOrder `json:"orders"`
	Total  int64                  `json:"total"`
}
