package models

import "errors"

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCustomerRef is returned when a visit references a missing customer.
	ErrInvalidCustomerRef = errors.New("customer does not exist")
)
