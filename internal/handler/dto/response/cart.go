package response

import (
	"levelup-cart/internal/usecase"
)

type CartProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	CountInStock int    `json:"countInStock"`
	ImageURL     string `json:"imageUrl"`
}

type CartItemResponse struct {
	Product    CartProductResponse `json:"product"`
	Quantity   int                 `json:"quantity"`
	IsRedeemed bool                `json:"isRedeemed,omitempty"`
	PointsCost int                 `json:"pointsCost,omitempty"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Count      int                `json:"count"`
	TotalPrice int64              `json:"totalPrice"`
}

func ToCartResponse(view usecase.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, CartItemResponse{
			Product: CartProductResponse{
				ID:           it.Product.ID,
				Name:         it.Product.Name,
				Price:        it.Product.Price,
				CountInStock: it.Product.CountInStock,
				ImageURL:     it.Product.ImageURL,
			},
			Quantity:   it.Quantity,
			IsRedeemed: it.IsRedeemed,
			PointsCost: it.PointsCost,
		})
	}
	return CartResponse{
		Items:      items,
		Count:      view.Count,
		TotalPrice: view.TotalPrice,
	}
}
