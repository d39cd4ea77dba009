package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop-services/internal/domain/order"
	apperrors "shop-services/pkg/errors"
)

// OrderRepoPG implements the orders Repository interface using PostgreSQL and GORM.
type OrderRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewOrderRepoPG creates a new instance of OrderRepoPG.
func NewOrderRepoPG(db *gorm.DB, log *zap.Logger) *OrderRepoPG {
	return &OrderRepoPG{db: db, log: log}
}

// OrderSchema represents the database schema for the orders table. UserID and
// ProductID are plain integers on purpose: no foreign key constraint exists.
type OrderSchema struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null"`
	ProductID int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for the OrderSchema model.
func (OrderSchema) TableName() string {
	return "orders"
}

func (s OrderSchema) toEntity() *order.Order {
	return &order.Order{
		ID:        s.ID,
		UserID:    s.UserID,
		ProductID: s.ProductID,
		CreatedAt: s.CreatedAt,
	}
}

// Create inserts a new order into the database. CreatedAt is assigned by the
// store at insert time.
func (r *OrderRepoPG) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	model := OrderSchema{
		UserID:    o.UserID,
		ProductID: o.ProductID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create order in db", zap.Error(err),
			zap.Int64("user_id", o.UserID), zap.Int64("product_id", o.ProductID))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	r.log.Info("order created in db", zap.Int64("id", model.ID))
	return model.toEntity(), nil
}

// Replace overwrites user_id and product_id of an existing order. CreatedAt is
// immutable.
func (r *OrderRepoPG) Replace(ctx context.Context, o *order.Order) (*order.Order, error) {
	var model OrderSchema
	if err := r.db.WithContext(ctx).First(&model, o.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order", "")
		}
		r.log.Error("failed to load order for update", zap.Error(err), zap.Int64("id", o.ID))
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	model.UserID = o.UserID
	model.ProductID = o.ProductID

	if err := r.db.WithContext(ctx).Model(&OrderSchema{}).Where("id = ?", o.ID).
		Select("user_id", "product_id").Updates(&model).Error; err != nil {
		r.log.Error("failed to update order in db", zap.Error(err), zap.Int64("id", o.ID))
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	r.log.Info("order updated in db", zap.Int64("id", model.ID))
	return model.toEntity(), nil
}

// Delete removes an order from the database by ID.
func (r *OrderRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&OrderSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete order in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order", "")
	}

	r.log.Info("order deleted in db", zap.Int64("id", id))
	return nil
}

// GetByID retrieves an order from the database by its unique ID.
func (r *OrderRepoPG) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var model OrderSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("order not found", zap.Int64("id", id))
			return nil, apperrors.NewNotFoundError("order", "")
		}
		r.log.Error("failed to get order from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves all orders from the database.
func (r *OrderRepoPG) List(ctx context.Context) ([]order.Order, error) {
	var models []OrderSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list orders from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]order.Order, len(models))
	for i, model := range models {
		orders[i] = *model.toEntity()
	}

	return orders, nil
}
