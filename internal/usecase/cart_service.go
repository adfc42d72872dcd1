package usecase

import (
	"context"
	"sync"

	"levelup-cart/internal/infra"
	"levelup-cart/internal/infra/storage"
	"levelup-cart/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrRewardNotFound  = errs.New("reward not found")
	ErrRewardInactive  = errs.New("reward is not active")
)

// CartUseCase is the session-facing surface of the cart engine. Every call
// carries the identity resolved for the request; the engine reacts only when
// it differs from the one the session last saw, so re-presenting the same
// token is a no-op rather than a transition.
type CartUseCase interface {
	GetCart(sessionID uuid.UUID, identity *uuid.UUID) CartView
	AddProduct(ctx context.Context, sessionID uuid.UUID, identity *uuid.UUID, productID string, quantity int) (CartView, error)
	RedeemReward(ctx context.Context, sessionID uuid.UUID, identity *uuid.UUID, rewardID string) (CartView, error)
	RemoveItem(sessionID uuid.UUID, identity *uuid.UUID, productID string) CartView
	IncreaseItem(sessionID uuid.UUID, identity *uuid.UUID, productID string) CartView
	DecreaseItem(sessionID uuid.UUID, identity *uuid.UUID, productID string) CartView
	ClearCart(sessionID uuid.UUID, identity *uuid.UUID) CartView
}

type cartUseCaseImpl struct {
	partitions storage.Store
	products   ProductRepository
	rewards    RewardRepository

	mu       sync.Mutex
	sessions map[uuid.UUID]*CartStore
}

func NewCartUseCase(partitions storage.Store, products ProductRepository, rewards RewardRepository) CartUseCase {
	return &cartUseCaseImpl{
		partitions: partitions,
		products:   products,
		rewards:    rewards,
		sessions:   make(map[uuid.UUID]*CartStore),
	}
}

// session returns the engine for a client session, creating it on first
// sight. An existing engine re-runs the identity-change procedure before the
// caller's operation is applied, which preserves the load-before-mutation
// ordering guarantee.
func (u *cartUseCaseImpl) session(sessionID uuid.UUID, identity *uuid.UUID) *CartStore {
	u.mu.Lock()
	store, ok := u.sessions[sessionID]
	if !ok {
		store = NewCartStore(u.partitions, identity)
		u.sessions[sessionID] = store
		u.mu.Unlock()
		return store
	}
	u.mu.Unlock()

	store.SetIdentity(identity)
	return store
}

func (u *cartUseCaseImpl) GetCart(sessionID uuid.UUID, identity *uuid.UUID) CartView {
	return u.session(sessionID, identity).View()
}

func (u *cartUseCaseImpl) AddProduct(ctx context.Context, sessionID uuid.UUID, identity *uuid.UUID, productID string, quantity int) (CartView, error) {
	store := u.session(sessionID, identity)

	prod, err := u.products.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return CartView{}, ErrProductNotFound
		}
		return CartView{}, errs.Mark(err, ErrProductNotFound)
	}

	// Stock exhaustion is not an error: the engine clamps or ignores and the
	// unchanged view goes back to the caller.
	return store.AddToCart(prod.CartRef(), quantity, false, 0), nil
}

func (u *cartUseCaseImpl) RedeemReward(ctx context.Context, sessionID uuid.UUID, identity *uuid.UUID, rewardID string) (CartView, error) {
	store := u.session(sessionID, identity)

	rw, err := u.rewards.FindByID(ctx, rewardID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return CartView{}, ErrRewardNotFound
		}
		return CartView{}, errs.Mark(err, ErrRewardNotFound)
	}
	if !rw.IsActive {
		return CartView{}, ErrRewardInactive
	}

	return store.AddToCart(rw.RedemptionRef(), 1, true, rw.PointsCost), nil
}

func (u *cartUseCaseImpl) RemoveItem(sessionID uuid.UUID, identity *uuid.UUID, productID string) CartView {
	return u.session(sessionID, identity).RemoveFromCart(productID)
}

func (u *cartUseCaseImpl) IncreaseItem(sessionID uuid.UUID, identity *uuid.UUID, productID string) CartView {
	return u.session(sessionID, identity).IncreaseQuantity(productID)
}

func (u *cartUseCaseImpl) DecreaseItem(sessionID uuid.UUID, identity *uuid.UUID, productID string) CartView {
	return u.session(sessionID, identity).DecreaseQuantity(productID)
}

func (u *cartUseCaseImpl) ClearCart(sessionID uuid.UUID, identity *uuid.UUID) CartView {
	return u.session(sessionID, identity).ClearCart()
}
