package repository

import "errors"

var (
	// ErrProductNotFound is returned when the referenced product does
	// not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateURL is returned when a product with the same URL is
	// already being monitored.
	ErrDuplicateURL = errors.New("product URL already exists")
)
