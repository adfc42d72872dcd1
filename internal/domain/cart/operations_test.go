//go:build unit

package cart_test

import (
	"testing"

	"levelup-cart/internal/domain/cart"
	"levelup-cart/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("new item enters with requested quantity", func(t *testing.T) {
		ref := builder.NewCartItemBuilder().WithStock(10).BuildRef()

		got := cart.Snapshot{}.Add(ref, 3, false, 0)

		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].Quantity)
		assert.Equal(t, ref, got[0].Product)
	})

	t.Run("quantity below one defaults to one", func(t *testing.T) {
		ref := builder.NewCartItemBuilder().BuildRef()

		got := cart.Snapshot{}.Add(ref, 0, false, 0)

		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Quantity)
	})

	t.Run("new item quantity is clamped to stock", func(t *testing.T) {
		ref := builder.NewCartItemBuilder().WithStock(2).BuildRef()

		got := cart.Snapshot{}.Add(ref, 5, false, 0)

		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Quantity)
	})

	t.Run("zero stock item is silently rejected", func(t *testing.T) {
		ref := builder.NewCartItemBuilder().WithStock(0).BuildRef()

		got := cart.Snapshot{}.Add(ref, 1, false, 0)

		assert.Empty(t, got)
	})

	t.Run("redemption enters with quantity one despite zero stock", func(t *testing.T) {
		ref := builder.NewCartItemBuilder().AsRedeemed(500).BuildRef()

		got := cart.Snapshot{}.Add(ref, 1, true, 500)

		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Quantity)
		assert.True(t, got[0].IsRedeemed)
		assert.Equal(t, 500, got[0].PointsCost)
	})

	t.Run("existing line sums quantities clamped to the supplied stock", func(t *testing.T) {
		existing := builder.NewCartItemBuilder().WithStock(10).WithQuantity(4).Build()
		snap := builder.BuildSnapshot(existing)

		fresh := builder.NewCartItemBuilder().WithStock(5).BuildRef()
		got := snap.Add(fresh, 3, false, 0)

		require.Len(t, got, 1)
		// 4+3 clamped to the stock supplied now, not the stored one.
		assert.Equal(t, 5, got[0].Quantity)
	})

	t.Run("existing line with fresh zero stock clamps to zero without removing", func(t *testing.T) {
		existing := builder.NewCartItemBuilder().WithStock(10).WithQuantity(2).Build()
		snap := builder.BuildSnapshot(existing)

		soldOut := builder.NewCartItemBuilder().WithStock(0).BuildRef()
		got := snap.Add(soldOut, 1, false, 0)

		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].Quantity)
	})

	t.Run("receiver is left untouched", func(t *testing.T) {
		existing := builder.NewCartItemBuilder().WithQuantity(1).Build()
		snap := builder.BuildSnapshot(existing)

		_ = snap.Add(existing.Product, 3, false, 0)

		assert.Equal(t, 1, snap[0].Quantity)
	})
}

func TestRemove(t *testing.T) {
	itemA := builder.NewCartItemBuilder().WithProductID("A").Build()
	itemB := builder.NewCartItemBuilder().WithProductID("B").Build()

	t.Run("removes the matching line", func(t *testing.T) {
		got := builder.BuildSnapshot(itemA, itemB).Remove("A")

		require.Len(t, got, 1)
		assert.Equal(t, "B", got[0].Product.ID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		snap := builder.BuildSnapshot(itemA)
		got := snap.Remove("missing")

		assert.Empty(t, cmp.Diff(snap, got))
	})
}

func TestIncrease(t *testing.T) {
	t.Run("bumps quantity by one", func(t *testing.T) {
		item := builder.NewCartItemBuilder().WithStock(5).WithQuantity(2).Build()

		got := builder.BuildSnapshot(item).Increase(item.Product.ID)

		assert.Equal(t, 3, got[0].Quantity)
	})

	t.Run("caps at the stored stock snapshot", func(t *testing.T) {
		item := builder.NewCartItemBuilder().WithStock(3).WithQuantity(3).Build()

		got := builder.BuildSnapshot(item).Increase(item.Product.ID)

		assert.Equal(t, 3, got[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		snap := builder.BuildSnapshot(builder.NewCartItemBuilder().Build())
		got := snap.Increase("missing")

		assert.Empty(t, cmp.Diff(snap, got))
	})
}

func TestDecrease(t *testing.T) {
	t.Run("lowers quantity by one", func(t *testing.T) {
		item := builder.NewCartItemBuilder().WithQuantity(3).Build()

		got := builder.BuildSnapshot(item).Decrease(item.Product.ID)

		assert.Equal(t, 2, got[0].Quantity)
	})

	t.Run("removes the line at zero instead of storing it", func(t *testing.T) {
		item := builder.NewCartItemBuilder().WithQuantity(1).Build()

		got := builder.BuildSnapshot(item).Decrease(item.Product.ID)

		assert.Empty(t, got)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		snap := builder.BuildSnapshot(builder.NewCartItemBuilder().Build())
		got := snap.Decrease("missing")

		assert.Empty(t, cmp.Diff(snap, got))
	})
}

func TestMerge(t *testing.T) {
	t.Run("guest items are appended in guest order", func(t *testing.T) {
		target := builder.BuildSnapshot(
			builder.NewCartItemBuilder().WithProductID("A").Build(),
		)
		guest := builder.BuildSnapshot(
			builder.NewCartItemBuilder().WithProductID("B").Build(),
			builder.NewCartItemBuilder().WithProductID("C").Build(),
		)

		got := cart.Merge(target, guest)

		require.Len(t, got, 3)
		assert.Equal(t, "A", got[0].Product.ID)
		assert.Equal(t, "B", got[1].Product.ID)
		assert.Equal(t, "C", got[2].Product.ID)
	})

	t.Run("duplicate sums quantities clamped to the guest stock snapshot", func(t *testing.T) {
		target := builder.BuildSnapshot(
			builder.NewCartItemBuilder().WithProductID("A").WithStock(10).WithQuantity(4).Build(),
		)
		guest := builder.BuildSnapshot(
			builder.NewCartItemBuilder().WithProductID("A").WithStock(5).WithQuantity(3).Build(),
		)

		got := cart.Merge(target, guest)

		require.Len(t, got, 1)
		// Ceiling comes from the guest item's snapshot: min(4+3, 5).
		assert.Equal(t, 5, got[0].Quantity)
	})

	t.Run("empty guest cart yields the target unchanged", func(t *testing.T) {
		target := builder.BuildSnapshot(builder.NewCartItemBuilder().Build())

		got := cart.Merge(target, cart.Snapshot{})

		assert.Empty(t, cmp.Diff(target, got))
	})

	t.Run("empty target adopts the guest cart", func(t *testing.T) {
		guest := builder.BuildSnapshot(builder.NewCartItemBuilder().Build())

		got := cart.Merge(cart.Snapshot{}, guest)

		assert.Empty(t, cmp.Diff(guest, got))
	})
}

func TestSnapshotDerivedValues(t *testing.T) {
	snap := builder.BuildSnapshot(
		builder.NewCartItemBuilder().WithProductID("A").WithPrice(1000).WithQuantity(2).Build(),
		builder.NewCartItemBuilder().WithProductID("B").WithPrice(500).WithQuantity(3).Build(),
		builder.NewCartItemBuilder().WithProductID("reward-RW001").AsRedeemed(500).Build(),
	)

	assert.Equal(t, 6, snap.Count())
	assert.Equal(t, int64(3500), snap.TotalPrice())
	assert.True(t, snap.Contains("A"))
	assert.False(t, snap.Contains("missing"))
}
