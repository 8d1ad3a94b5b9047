package domain

import "errors"

// Sentinel errors for the ordering domain. Use errors.Is() to check these.
// Each one maps to a distinct HTTP status in pkg/errhttp.
var (
	// ErrCustomerNotFound indicates the requested customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrMenuItemNotFound indicates the requested menu item does not exist.
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderLineNotFound indicates the order has no line for the given item.
	ErrOrderLineNotFound = errors.New("order line not found")

	// ErrInvalidInput indicates a value violates a domain constraint
	// (empty name, negative price, non-positive quantity).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateContact indicates a phone or email uniqueness conflict.
	ErrDuplicateContact = errors.New("phone or email already in use")

	// ErrInUse indicates a delete was blocked because orders or order lines
	// still reference the record.
	ErrInUse = errors.New("record referenced by existing orders")
)
