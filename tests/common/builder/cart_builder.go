//go:build unit

package builder

import (
	"levelup-cart/internal/domain/cart"
)

type CartItemBuilder struct {
	ProductID    string
	Name         string
	Price        int64
	CountInStock int
	Quantity     int
	IsRedeemed   bool
	PointsCost   int
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		ProductID:    "JM001",
		Name:         "Catan",
		Price:        29990,
		CountInStock: 10,
		Quantity:     1,
	}
}

func (b *CartItemBuilder) WithProductID(id string) *CartItemBuilder {
	b.ProductID = id
	return b
}

func (b *CartItemBuilder) WithName(name string) *CartItemBuilder {
	b.Name = name
	return b
}

func (b *CartItemBuilder) WithPrice(price int64) *CartItemBuilder {
	b.Price = price
	return b
}

func (b *CartItemBuilder) WithStock(stock int) *CartItemBuilder {
	b.CountInStock = stock
	return b
}

func (b *CartItemBuilder) WithQuantity(quantity int) *CartItemBuilder {
	b.Quantity = quantity
	return b
}

func (b *CartItemBuilder) AsRedeemed(pointsCost int) *CartItemBuilder {
	b.IsRedeemed = true
	b.PointsCost = pointsCost
	b.Price = 0
	b.CountInStock = 0
	return b
}

func (b *CartItemBuilder) BuildRef() cart.ProductRef {
	return cart.ProductRef{
		ID:           b.ProductID,
		Name:         b.Name,
		Price:        b.Price,
		CountInStock: b.CountInStock,
	}
}

func (b *CartItemBuilder) Build() cart.Item {
	return cart.Item{
		Product:    b.BuildRef(),
		Quantity:   b.Quantity,
		IsRedeemed: b.IsRedeemed,
		PointsCost: b.PointsCost,
	}
}

func BuildSnapshot(items ...cart.Item) cart.Snapshot {
	return cart.Snapshot(items)
}
