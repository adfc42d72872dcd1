package repository

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"levelup-cart/internal/domain/product"
	"levelup-cart/internal/domain/reward"
	"levelup-cart/internal/infra"
)

// Catalog repositories are process-local read models seeded from a JSON file.
// The catalog backend owns the data; this service only needs a snapshot to
// resolve cart insertions and serve listings, so there is no persistence
// behind admin mutations beyond process lifetime.

type ProductRepository struct {
	mu    sync.RWMutex
	byID  map[string]*product.Product
	order []string
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID: make(map[string]*product.Product),
	}
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "product "+id)
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) List(_ context.Context) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*product.Product, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ProductRepository) Save(_ context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	if _, exists := r.byID[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.byID[p.ID] = &cp
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return infra.NewRepoErr(infra.KindNotFound, "product "+id)
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type RewardRepository struct {
	mu    sync.RWMutex
	byID  map[string]*reward.Reward
	order []string
}

func NewRewardRepository() *RewardRepository {
	return &RewardRepository{
		byID: make(map[string]*reward.Reward),
	}
}

func (r *RewardRepository) FindByID(_ context.Context, id string) (*reward.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rw, ok := r.byID[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reward "+id)
	}
	cp := *rw
	return &cp, nil
}

func (r *RewardRepository) List(_ context.Context) ([]*reward.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*reward.Reward, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *RewardRepository) Save(_ context.Context, rw *reward.Reward) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *rw
	if _, exists := r.byID[rw.ID]; !exists {
		r.order = append(r.order, rw.ID)
	}
	r.byID[rw.ID] = &cp
	return nil
}

type catalogSeed struct {
	Products []*product.Product `json:"products"`
	Rewards  []*reward.Reward   `json:"rewards"`
}

// LoadCatalog seeds both repositories from a JSON catalog file. Records that
// fail validation abort the load: a broken catalog is a deploy problem, not
// something to paper over at runtime.
func LoadCatalog(ctx context.Context, path string, products *ProductRepository, rewards *RewardRepository) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStorageFailure, "read catalog file", err)
	}

	var seed catalogSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return infra.WrapRepoErr(infra.KindMalformedData, "parse catalog file", err)
	}

	for _, p := range seed.Products {
		if err := p.Validate(); err != nil {
			return infra.WrapRepoErr(infra.KindMalformedData, "invalid catalog product "+p.ID, err)
		}
		if err := products.Save(ctx, p); err != nil {
			return err
		}
	}
	for _, rw := range seed.Rewards {
		if err := rw.Validate(); err != nil {
			return infra.WrapRepoErr(infra.KindMalformedData, "invalid catalog reward "+rw.ID, err)
		}
		if err := rewards.Save(ctx, rw); err != nil {
			return err
		}
	}
	return nil
}
