package reward

import (
	"errors"

	"levelup-cart/internal/domain/cart"
)

var (
	ErrInvalidName       = errors.New("reward name is required")
	ErrNegativePoints    = errors.New("reward points cost cannot be negative")
	ErrInactive          = errors.New("reward is not active")
	ErrInvalidRewardType = errors.New("invalid reward type")
)

type Type string

const (
	TypeProduct  Type = "Producto"
	TypeDiscount Type = "Descuento"
	TypeShipping Type = "Envio"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeProduct, TypeDiscount, TypeShipping:
		return true
	default:
		return false
	}
}

// Reward is a loyalty catalog record redeemable for points.
type Reward struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          Type   `json:"type"`
	PointsCost    int    `json:"pointsCost"`
	Description   string `json:"description"`
	IsActive      bool   `json:"isActive"`
	Season        string `json:"season"`
	ImageURL      string `json:"imageUrl"`
	DiscountType  string `json:"discountType,omitempty"`
	DiscountValue int64  `json:"discountValue,omitempty"`
	Stock         *int   `json:"stock,omitempty"`
}

func (r *Reward) Validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	if r.PointsCost < 0 {
		return ErrNegativePoints
	}
	if !r.Type.IsValid() {
		return ErrInvalidRewardType
	}
	return nil
}

// RedemptionRef is the placeholder product a redeemed reward enters the cart
// as. Price 0 keeps it out of the total; stock 0 marks it as not purchasable,
// the cart admits it anyway with quantity 1.
func (r *Reward) RedemptionRef() cart.ProductRef {
	return cart.ProductRef{
		ID:           "reward-" + r.ID,
		Name:         r.Name,
		Price:        0,
		CountInStock: 0,
		ImageURL:     r.ImageURL,
	}
}
