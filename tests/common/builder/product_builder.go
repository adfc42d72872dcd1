//go:build unit

package builder

import (
	"levelup-cart/internal/domain/product"
	"levelup-cart/internal/domain/reward"
)

type ProductBuilder struct {
	ID           string
	Name         string
	Price        int64
	Category     string
	CountInStock int
	IsTopSelling bool
	Active       bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:           "JM001",
		Name:         "Catan",
		Price:        29990,
		Category:     "Juegos de Mesa",
		CountInStock: 10,
		Active:       true,
	}
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price int64) *ProductBuilder {
	b.Price = price
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.CountInStock = stock
	return b
}

func (b *ProductBuilder) AsInactive() *ProductBuilder {
	b.Active = false
	return b
}

func (b *ProductBuilder) Build() *product.Product {
	return &product.Product{
		ID:           b.ID,
		Name:         b.Name,
		Price:        b.Price,
		Category:     b.Category,
		CountInStock: b.CountInStock,
		IsTopSelling: b.IsTopSelling,
		Active:       b.Active,
	}
}

type RewardBuilder struct {
	ID         string
	Name       string
	Type       reward.Type
	PointsCost int
	IsActive   bool
}

func NewRewardBuilder() *RewardBuilder {
	return &RewardBuilder{
		ID:         "RW001",
		Name:       "Polera Level-Up de Regalo",
		Type:       reward.TypeProduct,
		PointsCost: 500,
		IsActive:   true,
	}
}

func (b *RewardBuilder) WithID(id string) *RewardBuilder {
	b.ID = id
	return b
}

func (b *RewardBuilder) WithType(t reward.Type) *RewardBuilder {
	b.Type = t
	return b
}

func (b *RewardBuilder) WithPointsCost(cost int) *RewardBuilder {
	b.PointsCost = cost
	return b
}

func (b *RewardBuilder) AsInactive() *RewardBuilder {
	b.IsActive = false
	return b
}

func (b *RewardBuilder) Build() *reward.Reward {
	return &reward.Reward{
		ID:         b.ID,
		Name:       b.Name,
		Type:       b.Type,
		PointsCost: b.PointsCost,
		IsActive:   b.IsActive,
	}
}
