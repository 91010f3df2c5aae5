package httpapi

import (
	"encoding/json"
	"time"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
)

// productRequest is the incoming product payload for create and update.
// Unknown fields are ignored. The price is kept as json.Number so the
// exact decimal text reaches the Money parser.
type productRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       *json.Number `json:"price"`
	ProductType string       `json:"productType"`
}

// priceChangeRequest drives the dedicated price-change operation. It is
// transient and never persisted.
type priceChangeRequest struct {
	ID    string       `json:"id"`
	Price *json.Number `json:"price"`
}

// productResponse is the outgoing product representation.
type productResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       *float64   `json:"price"`
	ProductType string     `json:"productType"`
	CreateDate  time.Time  `json:"createDate"`
	UpdateDate  *time.Time `json:"updateDate"`
}

// parsePrice converts the raw JSON number to Money. A missing field maps
// to nil, which the rules layer interprets per operation.
func parsePrice(raw *json.Number) (*domain.Money, error) {
	if raw == nil {
		return nil, nil
	}
	return domain.NewMoneyFromString(raw.String())
}

// domainToResponse maps a mutated aggregate to the response body.
func domainToResponse(p *domain.Product) *productResponse {
	resp := &productResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		ProductType: string(p.Type()),
		CreateDate:  p.CreateDate(),
		UpdateDate:  p.UpdateDate(),
	}

	if price := p.Price(); price != nil {
		f := price.Float64()
		resp.Price = &f
	}

	return resp
}

// dtoToResponse maps a read-model DTO to the response body.
func dtoToResponse(dto *contracts.ProductDTO) *productResponse {
	return &productResponse{
		ID:          dto.ProductID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		ProductType: dto.ProductType,
		CreateDate:  dto.CreateDate,
		UpdateDate:  dto.UpdateDate,
	}
}
