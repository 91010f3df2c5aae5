package delete_product

import (
	"context"
	"fmt"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
)

// Request contains the product id to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Committer
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	comm committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: comm,
	}
}

// Execute deletes a product by id. Deleting an unknown id is a no-op and
// never an error; there is deliberately no existence check.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(req.ProductID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
