//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"levelup-cart/internal/infra/repository"
	"levelup-cart/internal/usecase"
	"levelup-cart/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (usecase.CatalogUseCase, *repository.ProductRepository, *repository.RewardRepository) {
	t.Helper()
	products := repository.NewProductRepository()
	rewards := repository.NewRewardRepository()
	return usecase.NewCatalogUseCase(products, rewards), products, rewards
}

func TestCatalogUseCaseListing(t *testing.T) {
	ctx := context.Background()

	t.Run("list products hides inactive entries", func(t *testing.T) {
		uc, products, _ := newCatalogFixture(t)
		require.NoError(t, products.Save(ctx, builder.NewProductBuilder().WithID("A").Build()))
		require.NoError(t, products.Save(ctx, builder.NewProductBuilder().WithID("B").AsInactive().Build()))

		got, err := uc.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "A", got[0].ID)
	})

	t.Run("get product by id still serves inactive entries", func(t *testing.T) {
		uc, products, _ := newCatalogFixture(t)
		require.NoError(t, products.Save(ctx, builder.NewProductBuilder().WithID("B").AsInactive().Build()))

		got, err := uc.GetProduct(ctx, "B")
		require.NoError(t, err)
		assert.False(t, got.Active)
	})

	t.Run("unknown product id returns ErrProductNotFound", func(t *testing.T) {
		uc, _, _ := newCatalogFixture(t)

		_, err := uc.GetProduct(ctx, "missing")
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})

	t.Run("list rewards hides inactive entries", func(t *testing.T) {
		uc, _, rewards := newCatalogFixture(t)
		require.NoError(t, rewards.Save(ctx, builder.NewRewardBuilder().WithID("RW001").Build()))
		require.NoError(t, rewards.Save(ctx, builder.NewRewardBuilder().WithID("RW004").AsInactive().Build()))

		got, err := uc.ListRewards(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "RW001", got[0].ID)
	})
}

func TestCatalogUseCaseAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns an id and activates the product", func(t *testing.T) {
		uc, _, _ := newCatalogFixture(t)

		created, err := uc.CreateProduct(ctx, usecase.CreateProductParams{
			Name:         "Teclado Redragon Kumara",
			Price:        39990,
			Category:     "Accesorios",
			CountInStock: 12,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.Active)

		got, err := uc.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Teclado Redragon Kumara", got.Name)
	})

	t.Run("create rejects invalid data", func(t *testing.T) {
		uc, _, _ := newCatalogFixture(t)

		_, err := uc.CreateProduct(ctx, usecase.CreateProductParams{Name: "", Price: 100})
		assert.ErrorIs(t, err, usecase.ErrInvalidProduct)

		_, err = uc.CreateProduct(ctx, usecase.CreateProductParams{Name: "X", Price: -1})
		assert.ErrorIs(t, err, usecase.ErrInvalidProduct)
	})

	t.Run("update patches only the supplied fields", func(t *testing.T) {
		uc, products, _ := newCatalogFixture(t)
		require.NoError(t, products.Save(ctx, builder.NewProductBuilder().WithID("A").WithPrice(1000).WithStock(5).Build()))

		newPrice := int64(2000)
		inactive := false
		updated, err := uc.UpdateProduct(ctx, "A", usecase.UpdateProductParams{
			Price:  &newPrice,
			Active: &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2000), updated.Price)
		assert.False(t, updated.Active)
		// Untouched fields keep their stored values.
		assert.Equal(t, "Catan", updated.Name)
		assert.Equal(t, 5, updated.CountInStock)
	})

	t.Run("update rejects a patch that breaks validation", func(t *testing.T) {
		uc, products, _ := newCatalogFixture(t)
		require.NoError(t, products.Save(ctx, builder.NewProductBuilder().WithID("A").Build()))

		negative := int64(-5)
		_, err := uc.UpdateProduct(ctx, "A", usecase.UpdateProductParams{Price: &negative})
		assert.ErrorIs(t, err, usecase.ErrInvalidProduct)
	})

	t.Run("update of a missing product returns ErrProductNotFound", func(t *testing.T) {
		uc, _, _ := newCatalogFixture(t)

		name := "X"
		_, err := uc.UpdateProduct(ctx, "missing", usecase.UpdateProductParams{Name: &name})
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})

	t.Run("delete removes the product", func(t *testing.T) {
		uc, products, _ := newCatalogFixture(t)
		require.NoError(t, products.Save(ctx, builder.NewProductBuilder().WithID("A").Build()))

		require.NoError(t, uc.DeleteProduct(ctx, "A"))
		_, err := uc.GetProduct(ctx, "A")
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)

		assert.ErrorIs(t, uc.DeleteProduct(ctx, "A"), usecase.ErrProductNotFound)
	})
}
