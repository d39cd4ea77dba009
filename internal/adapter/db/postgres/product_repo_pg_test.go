package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"shop-services/internal/domain/product"
	apperrors "shop-services/pkg/errors"
)

func TestProductRepoPG_CreateAndGet(t *testing.T) {
	db := setupTestDB(t, &ProductSchema{})
	repo := NewProductRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &product.Product{Name: "Widget", Description: "A widget", Price: 19.99})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 19.99, created.Price)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductRepoPG_OptionalDescriptionAndDefaultPrice(t *testing.T) {
	db := setupTestDB(t, &ProductSchema{})
	repo := NewProductRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &product.Product{Name: "Bare"})
	require.NoError(t, err)
	assert.Empty(t, created.Description)
	assert.Zero(t, created.Price)
}

func TestProductRepoPG_Replace(t *testing.T) {
	db := setupTestDB(t, &ProductSchema{})
	repo := NewProductRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &product.Product{Name: "Widget", Price: 10})
	require.NoError(t, err)

	updated, err := repo.Replace(ctx, &product.Product{ID: created.ID, Name: "Gadget", Description: "Now a gadget", Price: 12.5})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, 12.5, updated.Price)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestProductRepoPG_NotFound(t *testing.T) {
	db := setupTestDB(t, &ProductSchema{})
	repo := NewProductRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	var notFound *apperrors.NotFoundError

	_, err := repo.GetByID(ctx, 7)
	assert.ErrorAs(t, err, &notFound)

	_, err = repo.Replace(ctx, &product.Product{ID: 7, Name: "Ghost"})
	assert.ErrorAs(t, err, &notFound)

	err = repo.Delete(ctx, 7)
	assert.ErrorAs(t, err, &notFound)
}
