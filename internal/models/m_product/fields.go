package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID        = "product_id"
	Name             = "name"
	Description      = "description"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	ProductType      = "product_type"
	CreateDate       = "create_date"
	UpdateDate       = "update_date"
)

// Columns lists every column of the products table, in DDL order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	PriceNumerator,
	PriceDenominator,
	ProductType,
	CreateDate,
	UpdateDate,
}
