package usecase

import (
	"context"

	"levelup-cart/internal/domain/product"
	"levelup-cart/internal/domain/reward"
	"levelup-cart/internal/infra"
	"levelup-cart/internal/pkg/errs"
	"levelup-cart/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrDuplicateProduct = errs.New("duplicate product")
	ErrInvalidProduct   = errs.New("product validation failed")
)

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
	Save(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id string) error
}

type RewardRepository interface {
	FindByID(ctx context.Context, id string) (*reward.Reward, error)
	List(ctx context.Context) ([]*reward.Reward, error)
}

type CreateProductParams struct {
	Name           string
	Description    string
	Price          int64
	ImageURL       string
	Category       string
	Specifications string
	CountInStock   int
	IsTopSelling   bool
}

// UpdateProductParams carries a partial update; nil fields keep the stored
// value.
type UpdateProductParams struct {
	Name           *string
	Description    *string
	Price          *int64
	ImageURL       *string
	Category       *string
	Specifications *string
	CountInStock   *int
	IsTopSelling   *bool
	Active         *bool
}

type CatalogUseCase interface {
	ListProducts(ctx context.Context) ([]*product.Product, error)
	GetProduct(ctx context.Context, id string) (*product.Product, error)
	ListRewards(ctx context.Context) ([]*reward.Reward, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*product.Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (*product.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type catalogUseCaseImpl struct {
	products ProductRepository
	rewards  RewardRepository
}

func NewCatalogUseCase(products ProductRepository, rewards RewardRepository) CatalogUseCase {
	return &catalogUseCaseImpl{
		products: products,
		rewards:  rewards,
	}
}

// ListProducts returns the customer-facing catalog: active products only.
func (u *catalogUseCaseImpl) ListProducts(ctx context.Context) ([]*product.Product, error) {
	all, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*product.Product, 0, len(all))
	for _, p := range all {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (u *catalogUseCaseImpl) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrProductNotFound)
	}
	return p, nil
}

func (u *catalogUseCaseImpl) ListRewards(ctx context.Context) ([]*reward.Reward, error) {
	all, err := u.rewards.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*reward.Reward, 0, len(all))
	for _, r := range all {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (u *catalogUseCaseImpl) CreateProduct(ctx context.Context, params CreateProductParams) (*product.Product, error) {
	p := &product.Product{
		ID:             uuid.NewString(),
		Name:           params.Name,
		Description:    params.Description,
		Price:          params.Price,
		ImageURL:       params.ImageURL,
		Category:       params.Category,
		Specifications: params.Specifications,
		CountInStock:   params.CountInStock,
		IsTopSelling:   params.IsTopSelling,
		Active:         true,
	}
	if err := p.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidProduct)
	}

	if err := u.products.Save(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateProduct
		}
		return nil, err
	}
	return p, nil
}

func (u *catalogUseCaseImpl) UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (*product.Product, error) {
	current, err := u.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Name = patch.Coalesce(params.Name, current.Name)
	updated.Description = patch.Coalesce(params.Description, current.Description)
	updated.Price = patch.Coalesce(params.Price, current.Price)
	updated.ImageURL = patch.Coalesce(params.ImageURL, current.ImageURL)
	updated.Category = patch.Coalesce(params.Category, current.Category)
	updated.Specifications = patch.Coalesce(params.Specifications, current.Specifications)
	updated.CountInStock = patch.Coalesce(params.CountInStock, current.CountInStock)
	updated.IsTopSelling = patch.Coalesce(params.IsTopSelling, current.IsTopSelling)
	updated.Active = patch.Coalesce(params.Active, current.Active)

	if err := updated.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidProduct)
	}

	if err := u.products.Save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *catalogUseCaseImpl) DeleteProduct(ctx context.Context, id string) error {
	if err := u.products.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
