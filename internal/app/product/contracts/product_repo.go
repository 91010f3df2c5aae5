package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/fc-labs/store-management-service/internal/app/product/domain"
)

// ProductRepository is the persistence gateway for product aggregates.
// Write methods return mutations; they never apply them. Collecting the
// mutations into a commit plan is the usecase's job.
type ProductRepository interface {
	// InsertMut creates a mutation inserting a new product.
	// Returns an error if the price does not fit int64 storage.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation covering only the dirty fields of the
	// aggregate. Returns (nil, nil) when nothing changed.
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// DeleteMut creates a mutation deleting a product by id. Applying it
	// for an unknown id is a no-op.
	DeleteMut(productID string) *spanner.Mutation

	// GetByID retrieves a product by id, reconstructing the domain
	// aggregate. Returns *domain.NotFoundError when absent.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindByName retrieves the product whose name equals the given name.
	// Returns (nil, nil) when no such product exists.
	FindByName(ctx context.Context, name string) (*domain.Product, error)

	// Count returns the number of persisted products.
	Count(ctx context.Context) (int64, error)
}
