package domain

import (
	"time"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldProductType = "product_type"
	FieldUpdateDate  = "update_date"
)

// Product is the aggregate root for the product catalog.
//
// The price is optional: a product may be created with no price or a zero
// price. The dedicated price-change operation is the only place where a
// zero price is rejected, and that rule lives in the change_price usecase,
// not here.
type Product struct {
	id          string
	name        string
	description string
	price       *Money // nil = no price recorded
	productType ProductType
	createDate  time.Time
	updateDate  *time.Time // nil until the first full update

	// Change tracking for field-level update mutations
	changes *ChangeTracker
}

// NewProduct creates a new Product aggregate for insertion. The id is
// store-assigned by the caller; createDate is the moment of creation.
// Field validation is the concern of the usecases.
func NewProduct(id, name, description string, price *Money, productType ProductType, createDate time.Time) *Product {
	p := &Product{
		id:          id,
		name:        name,
		description: description,
		productType: productType,
		createDate:  createDate,
		changes:     NewChangeTracker(),
	}
	if price != nil {
		p.price = price.Copy()
	}

	// Mark all fields as dirty for a new product
	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldProductType)

	return p
}

// ReconstructProduct reconstitutes a Product from the store.
func ReconstructProduct(
	id, name, description string,
	price *Money,
	productType ProductType,
	createDate time.Time,
	updateDate *time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		productType: productType,
		createDate:  createDate,
		updateDate:  updateDate,
		changes:     NewChangeTracker(), // clean slate
	}
}

// Getters
func (p *Product) ID() string            { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) Description() string   { return p.description }
func (p *Product) Type() ProductType     { return p.productType }
func (p *Product) CreateDate() time.Time { return p.createDate }
func (p *Product) Changes() *ChangeTracker { return p.changes }

// Price returns a copy of the price, or nil when no price is recorded.
func (p *Product) Price() *Money {
	if p.price == nil {
		return nil
	}
	return p.price.Copy()
}

// UpdateDate returns the last-update timestamp, or nil if the product was
// never updated.
func (p *Product) UpdateDate() *time.Time {
	if p.updateDate == nil {
		return nil
	}
	t := *p.updateDate
	return &t
}

// ApplyUpdate overwrites name, description and price and stamps the update
// date. The product type is deliberately left untouched: the update
// operation never replaces it.
func (p *Product) ApplyUpdate(name, description string, price *Money, now time.Time) {
	p.name = name
	p.description = description
	if price != nil {
		p.price = price.Copy()
	} else {
		p.price = nil
	}
	p.updateDate = &now

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldUpdateDate)
}

// SetPrice replaces only the price field. The update date is not stamped
// here: a price change leaves it untouched.
func (p *Product) SetPrice(price *Money) {
	p.price = price.Copy()
	p.changes.MarkDirty(FieldPrice)
}
