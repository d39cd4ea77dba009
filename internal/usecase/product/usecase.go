package product

import (
	"context"

	"go.uber.org/zap"

	domain "shop-services/internal/domain/product"
	apperrors "shop-services/pkg/errors"
	"shop-services/pkg/validate"
)

// Repository defines the interface for product data access operations.
type Repository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Replace(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Product, error)
}

type usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validate.Validator
}

// New creates a new product Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log, validate: validate.New()}
}

func toResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// CreateProduct creates a new product after validating the request.
func (uc *usecase) CreateProduct(ctx context.Context, in CreateProductRequest) (*ProductResponse, error) {
	uc.log.Info("creating product", zap.String("name", in.Name), zap.Float64("price", in.Price))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	created, err := uc.repo.Create(ctx, &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		uc.log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	return toResponse(created), nil
}

// UpdateProduct replaces an existing product's fields.
func (uc *usecase) UpdateProduct(ctx context.Context, in UpdateProductRequest) (*ProductResponse, error) {
	uc.log.Info("updating product", zap.Int64("id", in.ID), zap.String("name", in.Name))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	updated, err := uc.repo.Replace(ctx, &domain.Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		uc.log.Error("failed to update product", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toResponse(updated), nil
}

// DeleteProduct deletes a product by ID.
func (uc *usecase) DeleteProduct(ctx context.Context, id int64) error {
	uc.log.Info("deleting product", zap.Int64("id", id))

	if id <= 0 {
		return apperrors.NewValidationError("id", "must be a positive integer")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Warn("failed to delete product", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// GetProduct retrieves a product by ID.
func (uc *usecase) GetProduct(ctx context.Context, id int64) (*ProductResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "must be a positive integer")
	}

	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warn("failed to get product", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toResponse(p), nil
}

// ListProducts retrieves all products.
func (uc *usecase) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	domainProducts, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	products := make([]ProductResponse, len(domainProducts))
	for i, dp := range domainProducts {
		products[i] = *toResponse(&dp)
	}

	return products, nil
}
