package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the products table. The price is stored as a
// rational number; a NULL numerator/denominator pair means no price was
// recorded for the product.
type Data struct {
	ProductID        string            `spanner:"product_id"`
	Name             string            `spanner:"name"`
	Description      string            `spanner:"description"`
	PriceNumerator   spanner.NullInt64 `spanner:"price_numerator"`
	PriceDenominator spanner.NullInt64 `spanner:"price_denominator"`
	ProductType      string            `spanner:"product_type"`
	CreateDate       time.Time         `spanner:"create_date"`
	UpdateDate       spanner.NullTime  `spanner:"update_date"`
}
