package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/models/m_product"
	"github.com/fc-labs/store-management-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by id.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, &domain.NotFoundError{ID: productID}
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToDTO(&data), nil
}

// ListProducts retrieves all products. The order is store-defined; we sort
// by primary key so repeated calls agree with each other.
func (rm *ReadModelImpl) ListProducts(ctx context.Context) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		OrderBy(m_product.ProductID, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		products = append(products, dataToDTO(&data))
	}

	return products, nil
}

// dataToDTO converts a table row to a ProductDTO.
func dataToDTO(data *m_product.Data) *contracts.ProductDTO {
	dto := &contracts.ProductDTO{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		ProductType: data.ProductType,
		CreateDate:  data.CreateDate,
	}

	if data.PriceNumerator.Valid && data.PriceDenominator.Valid {
		if money, err := domain.NewMoney(data.PriceNumerator.Int64, data.PriceDenominator.Int64); err == nil {
			price := money.Float64()
			dto.Price = &price
		}
	}

	if data.UpdateDate.Valid {
		updateDate := data.UpdateDate.Time
		dto.UpdateDate = &updateDate
	}

	return dto
}
