package product

import "errors"

var (
	errProductNotFound = errors.New("product not found")
	errNameRequired    = errors.New("name is required")
)
