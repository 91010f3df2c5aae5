// Package services wires the application dependencies together.
package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/fc-labs/store-management-service/internal/app/product/queries/get_product"
	"github.com/fc-labs/store-management-service/internal/app/product/queries/list_products"
	"github.com/fc-labs/store-management-service/internal/app/product/repo"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/change_price"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/create_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/delete_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/update_product"
	"github.com/fc-labs/store-management-service/internal/auth"
	"github.com/fc-labs/store-management-service/internal/config"
	"github.com/fc-labs/store-management-service/internal/pkg/clock"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
	httpapi "github.com/fc-labs/store-management-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	ProductHandler *httpapi.Handler
	Authorizer     auth.Authorizer
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	productRepo := repo.NewProductRepo(spannerClient)
	readModel := repo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, comm, clk)
	changePriceUseCase := change_price.NewInteractor(productRepo, comm)
	deleteProductUseCase := delete_product.NewInteractor(productRepo, comm)

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(readModel)

	// 6. Create the REST handler and the account directory
	authorizer := auth.NewStaticAuthorizer(cfg.ReadUser, cfg.ReadPassword, cfg.AdminUser, cfg.AdminPassword)

	productHandler := httpapi.NewHandler(
		createProductUseCase,
		updateProductUseCase,
		changePriceUseCase,
		deleteProductUseCase,
		getProductQuery,
		listProductsQuery,
		logger,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		ProductHandler: productHandler,
		Authorizer:     authorizer,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
