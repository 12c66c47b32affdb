package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
)
