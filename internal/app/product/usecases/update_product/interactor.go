package update_product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/pkg/clock"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
)

// Request contains the candidate product and the path id to update.
type Request struct {
	ProductID   string
	Name        string
	Description string
	Price       *domain.Money
	ProductType domain.ProductType
}

// Interactor handles the update product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	comm committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: comm,
		clock:     clk,
	}
}

// Execute updates the product behind the path id, or creates a new record
// when the id is unknown.
//
// The miss branch keeps a long-standing quirk of this API: the candidate
// is persisted under a fresh store-assigned id, not the requested path id,
// and its name is not validated or checked for uniqueness. Callers relying
// on PUT-to-id-creates-id semantics will be surprised.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return i.createFromCandidate(ctx, req)
		}
		return nil, err
	}

	product.ApplyUpdate(req.Name, req.Description, req.Price, i.clock.Now())

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

// createFromCandidate persists the candidate as a brand new record.
func (i *Interactor) createFromCandidate(ctx context.Context, req *Request) (*domain.Product, error) {
	productID := uuid.New().String()
	product := domain.NewProduct(
		productID,
		req.Name,
		req.Description,
		req.Price,
		req.ProductType,
		i.clock.Now(),
	)

	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(product)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product, nil
}
