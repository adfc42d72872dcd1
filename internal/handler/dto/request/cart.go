package request

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

func (r *AddCartItemRequest) GetQuantity() int {
	if r.Quantity < 1 {
		return 1
	}
	return r.Quantity
}

type RedeemRewardRequest struct {
	RewardID string `json:"reward_id" binding:"required"`
}
