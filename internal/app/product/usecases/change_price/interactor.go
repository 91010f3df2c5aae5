package change_price

import (
	"context"
	"fmt"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
)

// Request contains the product id and the new price.
type Request struct {
	ProductID string
	Price     *domain.Money // nil when the caller omitted the field
}

// Interactor handles the dedicated price-change use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Committer
}

// NewInteractor creates a new change price interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	comm committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: comm,
	}
}

// Execute replaces the price of an existing product. Validation runs
// before the lookup, so a zero price for an unknown id still reports the
// price error, matching the historical behavior. Only exact zero is
// rejected; negative prices pass through. The update date is not
// refreshed by a price change.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	if err := i.validate(req); err != nil {
		return nil, err
	}

	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	product.SetPrice(req.Price)

	plan := committer.NewPlan()

	mut, err := i.repo.UpdateMut(product)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product, nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if req.Price == nil {
		return domain.ErrPriceMissing
	}
	if req.Price.IsZero() {
		return &domain.ZeroPriceError{ID: req.ProductID}
	}
	return nil
}
