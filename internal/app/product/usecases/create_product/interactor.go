package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/pkg/clock"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Name        string
	Description string
	Price       *domain.Money // optional; zero is allowed at creation
	ProductType domain.ProductType
}

// Interactor handles the create product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
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

// Execute creates a new product. The name must be present and not already
// taken; the uniqueness check happens only here, never on update.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	if req.Name == "" {
		return nil, domain.ErrNameMissing
	}

	existing, err := i.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.NameConflictError{Name: req.Name}
	}

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
