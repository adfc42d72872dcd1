package request

import "levelup-cart/internal/usecase"

type CreateProductRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Price          int64  `json:"price" binding:"min=0"`
	ImageURL       string `json:"imageUrl"`
	Category       string `json:"category"`
	Specifications string `json:"specifications"`
	CountInStock   int    `json:"countInStock" binding:"min=0"`
	IsTopSelling   bool   `json:"isTopSelling"`
}

func (r *CreateProductRequest) ToParams() usecase.CreateProductParams {
	return usecase.CreateProductParams{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		ImageURL:       r.ImageURL,
		Category:       r.Category,
		Specifications: r.Specifications,
		CountInStock:   r.CountInStock,
		IsTopSelling:   r.IsTopSelling,
	}
}

type UpdateProductRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Price          *int64  `json:"price" binding:"omitempty,min=0"`
	ImageURL       *string `json:"imageUrl"`
	Category       *string `json:"category"`
	Specifications *string `json:"specifications"`
	CountInStock   *int    `json:"countInStock" binding:"omitempty,min=0"`
	IsTopSelling   *bool   `json:"isTopSelling"`
	Active         *bool   `json:"active"`
}

func (r *UpdateProductRequest) ToParams() usecase.UpdateProductParams {
	return usecase.UpdateProductParams{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		ImageURL:       r.ImageURL,
		Category:       r.Category,
		Specifications: r.Specifications,
		CountInStock:   r.CountInStock,
		IsTopSelling:   r.IsTopSelling,
		Active:         r.Active,
	}
}
