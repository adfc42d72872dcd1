package product

import (
	"errors"

	"levelup-cart/internal/domain/cart"
)

var (
	ErrInvalidName   = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price cannot be negative")
	ErrNegativeStock = errors.New("product stock cannot be negative")
)

// Product is a catalog record. Prices are integer CLP. The cart never holds
// a Product directly; it captures the denormalized CartRef snapshot instead.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          int64   `json:"price"`
	ImageURL       string  `json:"imageUrl"`
	Category       string  `json:"category"`
	Specifications string  `json:"specifications"`
	CountInStock   int     `json:"countInStock"`
	IsTopSelling   bool    `json:"isTopSelling"`
	Rating         float64 `json:"rating"`
	NumReviews     int     `json:"numReviews"`
	Active         bool    `json:"active"`
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.CountInStock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// CartRef is the snapshot of this product captured at cart-insertion time.
func (p *Product) CartRef() cart.ProductRef {
	return cart.ProductRef{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		CountInStock: p.CountInStock,
		ImageURL:     p.ImageURL,
	}
}
