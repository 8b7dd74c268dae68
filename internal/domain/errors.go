package domain

import "errors"

// Domain-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductRejected = errors.New("product rejected by catalog")
	ErrProductExists   = errors.New("product already registered")
)
