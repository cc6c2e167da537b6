package repository

import (
	"context"

	"product-catalog-api/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Product, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	// UpdateFields applies the set fields of the patch to the record matching
	// id and returns the post-update record in the same store operation.
	// Returns (nil, nil) when no record matched.
	UpdateFields(ctx context.Context, id int64, patch *entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
