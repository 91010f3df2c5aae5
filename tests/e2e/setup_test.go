//go:build integration

package e2e

import (
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/fc-labs/store-management-service/internal/app/product/queries/get_product"
	"github.com/fc-labs/store-management-service/internal/app/product/queries/list_products"
	"github.com/fc-labs/store-management-service/internal/app/product/repo"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/change_price"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/create_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/delete_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/update_product"
	"github.com/fc-labs/store-management-service/internal/pkg/clock"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
	"github.com/fc-labs/store-management-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateProduct *create_product.Interactor
	UpdateProduct *update_product.Interactor
	ChangePrice   *change_price.Interactor
	DeleteProduct *delete_product.Interactor

	// Queries
	GetProduct   *get_product.Query
	ListProducts *list_products.Query

	// Infrastructure
	Clock  *clock.MockClock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := testutil.NewMockClock()
	comm := committer.NewCommitter(client)

	productRepo := repo.NewProductRepo(client)
	readModel := repo.NewReadModel(client)

	return &Services{
		CreateProduct: create_product.NewInteractor(productRepo, comm, clk),
		UpdateProduct: update_product.NewInteractor(productRepo, comm, clk),
		ChangePrice:   change_price.NewInteractor(productRepo, comm),
		DeleteProduct: delete_product.NewInteractor(productRepo, comm),
		GetProduct:    get_product.NewQuery(readModel),
		ListProducts:  list_products.NewQuery(readModel),
		Clock:         clk,
		Client:        client,
	}, cleanup
}
