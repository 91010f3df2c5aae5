package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for product queries.
type ProductDTO struct {
	ProductID   string
	Name        string
	Description string
	Price       *float64 // approximate representation for display; nil = no price
	ProductType string
	CreateDate  time.Time
	UpdateDate  *time.Time
}

// ReadModel defines the interface for product queries. Queries bypass the
// domain layer and read rows straight into DTOs.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by id.
	// Returns *domain.NotFoundError when absent.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves all products in store order.
	ListProducts(ctx context.Context) ([]*ProductDTO, error)
}
