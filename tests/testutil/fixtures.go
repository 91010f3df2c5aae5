package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fc-labs/store-management-service/internal/models/m_product"
)

// CreateTestProduct creates a test product directly in the database.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:        productID,
		Name:             name,
		Description:      "Test product description",
		PriceNumerator:   spanner.NullInt64{Int64: 10000, Valid: true},
		PriceDenominator: spanner.NullInt64{Int64: 100, Valid: true},
		ProductType:      "HARD",
		CreateDate:       time.Now(),
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestProductWithoutPrice creates a test product with no price recorded.
func CreateTestProductWithoutPrice(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:   productID,
		Name:        name,
		Description: "Test product without price",
		ProductType: "SOFT",
		CreateDate:  time.Now(),
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product without price")

	return productID
}

// GetProductRow retrieves a product row from the database for verification.
func GetProductRow(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse product data")

	return &data
}
