package domain

import (
	"errors"
	"fmt"
)

// Domain failures form a closed set of kinds. Each kind carries the
// context needed to format a caller-facing message; the transport layer
// owns the mapping to HTTP status codes.
var (
	ErrNameMissing  = errors.New("the product name was not provided")
	ErrPriceMissing = errors.New("the field price is mandatory")
)

// NotFoundError reports a lookup for a product id that does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find product with id %s", e.ID)
}

// NameConflictError reports a create attempt with a name already taken
// by another product.
type NameConflictError struct {
	Name string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("the product name already exists: %s", e.Name)
}

// ZeroPriceError reports a price change to exactly zero. Only zero is
// rejected; negative prices pass through unchanged.
type ZeroPriceError struct {
	ID string
}

func (e *ZeroPriceError) Error() string {
	return fmt.Sprintf("new price should be greater than zero for product %s", e.ID)
}
