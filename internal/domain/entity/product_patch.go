package entity

import (
	"product-catalog-api/pkg/optional"

	"github.com/shopspring/decimal"
)

// ProductPatch is the change-set for a partial product update. A field is
// written if and only if it is set; an explicit null on Description clears
// the column. Name, Price and StockQuantity have no null variant, the
// delivery layer rejects nulls for them before a patch is built.
type ProductPatch struct {
	Name          optional.Optional[string]
	Description   optional.Optional[string]
	Price         optional.Optional[decimal.Decimal]
	StockQuantity optional.Optional[int]
}

// IsEmpty reports whether the patch carries no fields to write.
func (p *ProductPatch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Description.IsSet() && !p.Price.IsSet() && !p.StockQuantity.IsSet()
}

// Changes projects the patch into the column map handed to the store.
// Only set fields appear; an explicit null Description maps to a nil value,
// which the store writes as SQL NULL.
func (p *ProductPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})

	if name, ok := p.Name.Value(); ok {
		changes["name"] = name
	}
	if p.Description.IsSet() {
		if description, ok := p.Description.Value(); ok {
			changes["description"] = description
		} else {
			changes["description"] = nil
		}
	}
	if price, ok := p.Price.Value(); ok {
		changes["price"] = price
	}
	if stock, ok := p.StockQuantity.Value(); ok {
		changes["stock_quantity"] = stock
	}

	return changes
}
