package response

import (
	"github.com/jinzhu/copier"

	"levelup-cart/internal/domain/product"
	"levelup-cart/internal/domain/reward"
	"levelup-cart/internal/pkg/errs"
)

type ProductResponse struct {
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

type RewardResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	PointsCost    int    `json:"pointsCost"`
	Description   string `json:"description"`
	IsActive      bool   `json:"isActive"`
	Season        string `json:"season,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	DiscountType  string `json:"discountType,omitempty"`
	DiscountValue int64  `json:"discountValue,omitempty"`
	Stock         *int   `json:"stock,omitempty"`
}

func ToProductResponse(p *product.Product) (*ProductResponse, error) {
	var resp ProductResponse
	if err := copier.Copy(&resp, p); err != nil {
		return nil, errs.Wrap(err, "failed to convert product response")
	}
	return &resp, nil
}

func ToProductListResponse(products []*product.Product) ([]*ProductResponse, error) {
	resp := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		item, err := ToProductResponse(p)
		if err != nil {
			return nil, err
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func ToRewardResponse(r *reward.Reward) (*RewardResponse, error) {
	var resp RewardResponse
	if err := copier.Copy(&resp, r); err != nil {
		return nil, errs.Wrap(err, "failed to convert reward response")
	}
	return &resp, nil
}

func ToRewardListResponse(rewards []*reward.Reward) ([]*RewardResponse, error) {
	resp := make([]*RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		item, err := ToRewardResponse(r)
		if err != nil {
			return nil, err
		}
		resp = append(resp, item)
	}
	return resp, nil
}
