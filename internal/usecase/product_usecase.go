package usecase

import (
	"context"
	"errors"

	"product-catalog-api/internal/converter"
	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/entity"
	"product-catalog-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]dto.ProductResponse, int64, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewProductUsecase(log *logrus.Logger, productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.ProductResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	products, total, err := u.productRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find products: %+v", err)
		return nil, 0, err
	}

	return converter.ProductsToResponses(products), total, nil
}

func (u *productUsecase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

// Update applies exactly the fields supplied in the request to the product
// matching id. A request with no fields reads the current record and returns
// it unchanged without writing.
func (u *productUsecase) Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch := &entity.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	if patch.IsEmpty() {
		product, err := u.productRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find product: %+v", err)
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		return converter.ProductToResponse(product), nil
	}

	product, err := u.productRepo.UpdateFields(ctx, id, patch)
	if err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Delete(ctx context.Context, id int64) error {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete product: %+v", err)
		return err
	}

	return nil
}
