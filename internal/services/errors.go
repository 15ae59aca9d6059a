// internal/services/errors.go
package services

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrEmptyCart = errors.New("cart is empty")
)
