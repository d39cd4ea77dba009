package order

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "shop-services/internal/domain/order"
	apperrors "shop-services/pkg/errors"
	"shop-services/pkg/validate"
)

// Repository defines the interface for order data access operations.
type Repository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Replace(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Order, error)
}

type usecase struct {
	repo     Repository
	names    NameResolver
	log      *zap.Logger
	validate *validate.Validator
}

// New creates a new order Usecase with the provided repository, name resolver
// and logger.
func New(r Repository, names NameResolver, log *zap.Logger) Usecase {
	return &usecase{repo: r, names: names, log: log, validate: validate.New()}
}

// enrich resolves the two display names of an order. The lookups are
// independent, so they run concurrently; neither can fail the request.
func (uc *usecase) enrich(ctx context.Context, o *domain.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		CreatedAt: o.CreatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp.UserName = uc.names.UserName(gctx, o.UserID)
		return nil
	})
	g.Go(func() error {
		resp.ProductName = uc.names.ProductName(gctx, o.ProductID)
		return nil
	})
	_ = g.Wait()

	return resp
}

// CreateOrder creates a new order after validating the request. The response
// carries enriched display names for the referenced user and product.
func (uc *usecase) CreateOrder(ctx context.Context, in CreateOrderRequest) (*OrderResponse, error) {
	uc.log.Info("creating order", zap.Int64("user_id", in.UserID), zap.Int64("product_id", in.ProductID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	created, err := uc.repo.Create(ctx, &domain.Order{
		UserID:    in.UserID,
		ProductID: in.ProductID,
	})
	if err != nil {
		uc.log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	return uc.enrich(ctx, created), nil
}

// UpdateOrder replaces the user/product references of an existing order.
func (uc *usecase) UpdateOrder(ctx context.Context, in UpdateOrderRequest) (*OrderResponse, error) {
	uc.log.Info("updating order", zap.Int64("id", in.ID),
		zap.Int64("user_id", in.UserID), zap.Int64("product_id", in.ProductID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	updated, err := uc.repo.Replace(ctx, &domain.Order{
		ID:        in.ID,
		UserID:    in.UserID,
		ProductID: in.ProductID,
	})
	if err != nil {
		uc.log.Error("failed to update order", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return uc.enrich(ctx, updated), nil
}

// DeleteOrder deletes an order by ID.
func (uc *usecase) DeleteOrder(ctx context.Context, id int64) error {
	uc.log.Info("deleting order", zap.Int64("id", id))

	if id <= 0 {
		return apperrors.NewValidationError("id", "must be a positive integer")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Warn("failed to delete order", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// GetOrder retrieves an order by ID with enriched display names.
func (uc *usecase) GetOrder(ctx context.Context, id int64) (*OrderResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "must be a positive integer")
	}

	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warn("failed to get order", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return uc.enrich(ctx, o), nil
}

// ListOrders retrieves all orders with enriched display names. Listing N
// orders performs up to 2N peer lookups; enrichment failures degrade to
// placeholders, never to an error.
func (uc *usecase) ListOrders(ctx context.Context) ([]OrderResponse, error) {
	domainOrders, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list orders", zap.Error(err))
		return nil, err
	}

	orders := make([]OrderResponse, len(domainOrders))
	for i, do := range domainOrders {
		orders[i] = *uc.enrich(ctx, &do)
	}

	return orders, nil
}
