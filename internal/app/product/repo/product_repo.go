package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/models/m_product"
	"github.com/fc-labs/store-management-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldPrice) {
		num, denom, err := priceColumns(product.Price())
		if err != nil {
			return nil, err
		}
		updates[m_product.PriceNumerator] = num
		updates[m_product.PriceDenominator] = denom
	}

	if changes.Dirty(domain.FieldProductType) {
		updates[m_product.ProductType] = string(product.Type())
	}

	if changes.Dirty(domain.FieldUpdateDate) {
		if updateDate := product.UpdateDate(); updateDate != nil {
			updates[m_product.UpdateDate] = *updateDate
		} else {
			updates[m_product.UpdateDate] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil, nil
	}

	return r.model.UpdateMut(product.ID(), updates), nil
}

// DeleteMut creates a mutation deleting a product by id.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID retrieves a product by id, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
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

	return r.dataToDomain(&data)
}

// FindByName retrieves the product with the given name, or (nil, nil)
// when no product carries it. Names are only checked at creation time, so
// a single row is all we ever need.
func (r *ProductRepo) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		Where(query.Eq(m_product.Name, name)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product by name: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return r.dataToDomain(&data)
}

// Count returns the number of persisted products.
func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	stmt := query.From(m_product.TableName).Count().Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}

	return count, nil
}

// priceColumns converts an optional Money into the nullable column pair.
func priceColumns(price *domain.Money) (spanner.NullInt64, spanner.NullInt64, error) {
	if price == nil {
		return spanner.NullInt64{}, spanner.NullInt64{}, nil
	}

	normalized := price.Normalize()
	if !normalized.IsSafeForStorage() {
		return spanner.NullInt64{}, spanner.NullInt64{}, fmt.Errorf("price exceeds storage capacity")
	}

	return spanner.NullInt64{Int64: normalized.Numerator(), Valid: true},
		spanner.NullInt64{Int64: normalized.Denominator(), Valid: true},
		nil
}

// domainToData converts a domain Product to a table row.
func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	num, denom, err := priceColumns(product.Price())
	if err != nil {
		return nil, err
	}

	data := &m_product.Data{
		ProductID:        product.ID(),
		Name:             product.Name(),
		Description:      product.Description(),
		PriceNumerator:   num,
		PriceDenominator: denom,
		ProductType:      string(product.Type()),
		CreateDate:       product.CreateDate(),
	}

	if updateDate := product.UpdateDate(); updateDate != nil {
		data.UpdateDate = spanner.NullTime{Time: *updateDate, Valid: true}
	}

	return data, nil
}

// dataToDomain converts a table row to a domain Product.
func (r *ProductRepo) dataToDomain(data *m_product.Data) (*domain.Product, error) {
	var price *domain.Money
	if data.PriceNumerator.Valid && data.PriceDenominator.Valid {
		var err error
		price, err = domain.NewMoney(data.PriceNumerator.Int64, data.PriceDenominator.Int64)
		if err != nil {
			return nil, fmt.Errorf("invalid stored price: %w", err)
		}
	}

	var updateDate *time.Time
	if data.UpdateDate.Valid {
		updateDate = &data.UpdateDate.Time
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		price,
		domain.ProductType(data.ProductType),
		data.CreateDate,
		updateDate,
	), nil
}
