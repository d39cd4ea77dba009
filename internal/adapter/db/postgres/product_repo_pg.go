package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop-services/internal/domain/product"
	apperrors "shop-services/pkg/errors"
)

// ProductRepoPG implements the products Repository interface using PostgreSQL and GORM.
type ProductRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewProductRepoPG creates a new instance of ProductRepoPG.
func NewProductRepoPG(db *gorm.DB, log *zap.Logger) *ProductRepoPG {
	return &ProductRepoPG{db: db, log: log}
}

// ProductSchema represents the database schema for the products table.
type ProductSchema struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"not null"`
	Description string  // optional
	Price       float64 `gorm:"not null;default:0"`
}

// TableName specifies the table name for the ProductSchema model.
func (ProductSchema) TableName() string {
	return "products"
}

func (s ProductSchema) toEntity() *product.Product {
	return &product.Product{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
	}
}

// Create inserts a new product into the database.
func (r *ProductRepoPG) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	model := ProductSchema{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create product in db", zap.Error(err), zap.String("name", p.Name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	r.log.Info("product created in db", zap.Int64("id", model.ID))
	return model.toEntity(), nil
}

// Replace overwrites the mutable fields of an existing product.
func (r *ProductRepoPG) Replace(ctx context.Context, p *product.Product) (*product.Product, error) {
	var model ProductSchema
	if err := r.db.WithContext(ctx).First(&model, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product", "")
		}
		r.log.Error("failed to load product for update", zap.Error(err), zap.Int64("id", p.ID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	model.Name = p.Name
	model.Description = p.Description
	model.Price = p.Price

	if err := r.db.WithContext(ctx).Model(&ProductSchema{}).Where("id = ?", p.ID).
		Select("name", "description", "price").Updates(&model).Error; err != nil {
		r.log.Error("failed to update product in db", zap.Error(err), zap.Int64("id", p.ID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	r.log.Info("product updated in db", zap.Int64("id", model.ID))
	return model.toEntity(), nil
}

// Delete removes a product from the database by ID.
func (r *ProductRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ProductSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete product in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product", "")
	}

	r.log.Info("product deleted in db", zap.Int64("id", id))
	return nil
}

// GetByID retrieves a product from the database by its unique ID.
func (r *ProductRepoPG) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var model ProductSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("product not found", zap.Int64("id", id))
			return nil, apperrors.NewNotFoundError("product", "")
		}
		r.log.Error("failed to get product from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves all products from the database.
func (r *ProductRepoPG) List(ctx context.Context) ([]product.Product, error) {
	var models []ProductSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list products from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]product.Product, len(models))
	for i, model := range models {
		products[i] = *model.toEntity()
	}

	return products, nil
}
