package domain

import "fmt"

// ProductType is the fixed product category enumeration.
type ProductType string

const (
	TypeSoft ProductType = "SOFT"
	TypeHard ProductType = "HARD"

	// TypeUnspecified is the zero value; a product may be created
	// without a category.
	TypeUnspecified ProductType = ""
)

// ParseProductType validates an incoming category string.
func ParseProductType(s string) (ProductType, error) {
	switch t := ProductType(s); t {
	case TypeSoft, TypeHard, TypeUnspecified:
		return t, nil
	default:
		return TypeUnspecified, fmt.Errorf("unknown product type %q", s)
	}
}
