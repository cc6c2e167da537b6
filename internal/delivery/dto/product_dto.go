package dto

import (
	"time"

	"product-catalog-api/pkg/optional"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=2"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
}

// UpdateProductRequest carries three-state fields: a key absent from the
// payload leaves the column untouched, an explicit null clears it (allowed
// for description only), a value overwrites it.
type UpdateProductRequest struct {
	Name          optional.Optional[string]          `json:"name"`
	Description   optional.Optional[string]          `json:"description"`
	Price         optional.Optional[decimal.Decimal] `json:"price"`
	StockQuantity optional.Optional[int]             `json:"stock_quantity"`
}

// Validate checks the rules struct tags cannot express for optional fields.
// Returns nil when the request is valid.
func (r *UpdateProductRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if r.Name.IsNull() {
		errs["name"] = "name cannot be null"
	}

	if r.Price.IsNull() {
		errs["price"] = "price cannot be null"
	} else if price, ok := r.Price.Value(); ok && price.Sign() <= 0 {
		errs["price"] = "price must be greater than 0"
	}

	if r.StockQuantity.IsNull() {
		errs["stock_quantity"] = "stock_quantity cannot be null"
	} else if stock, ok := r.StockQuantity.Value(); ok && stock < 0 {
		errs["stock_quantity"] = "stock_quantity must be greater than or equal to 0"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Response DTOs

type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
