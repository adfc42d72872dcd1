package usecase

import (
	"errors"
	"log/slog"
	"sync"

	"levelup-cart/internal/domain/cart"
	"levelup-cart/internal/infra/storage"

	"github.com/google/uuid"
)

// GuestPartitionKey is the storage partition shared by all unauthenticated
// activity of one running instance.
const GuestPartitionKey = "cart_guest"

// PartitionKey derives the storage key for an identity: cart_<user id> for an
// authenticated user, cart_guest otherwise.
func PartitionKey(identity *uuid.UUID) string {
	if identity == nil {
		return GuestPartitionKey
	}
	return "cart_" + identity.String()
}

// CartView is the read model exposed to the UI layer. Count and TotalPrice
// are derived from the items on every read, never stored.
type CartView struct {
	Items      cart.Snapshot
	Count      int
	TotalPrice int64
}

// CartStore owns the in-memory cart snapshot for one client session and the
// storage partition it mirrors. All operations are serialized behind a mutex:
// the merge-on-login step reads and writes two partitions non-atomically and
// must never interleave with a mutation on either of them.
type CartStore struct {
	mu        sync.Mutex
	store     storage.Store
	activeKey string
	items     cart.Snapshot
}

func NewCartStore(store storage.Store, identity *uuid.UUID) *CartStore {
	key := PartitionKey(identity)
	return &CartStore{
		store:     store,
		activeKey: key,
		items:     loadSnapshot(store, key),
	}
}

// SetIdentity re-runs the identity-change procedure. It is a no-op when the
// implied partition key is unchanged. On a true guest→user transition the
// persisted guest items are merged into the freshly loaded user items, the
// merged result is written to the user partition and the guest partition is
// removed. The merge is one-time and idempotent: a second transition finds
// nothing to merge. A plain load never writes storage: persisting is gated on the key
// being stable so that a load triggered by a key change cannot clobber the
// previous partition's still-correct data.
func (s *CartStore) SetIdentity(identity *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newKey := PartitionKey(identity)
	if newKey == s.activeKey {
		return
	}

	items := loadSnapshot(s.store, newKey)

	if identity != nil && s.activeKey == GuestPartitionKey {
		guestItems := loadSnapshot(s.store, GuestPartitionKey)
		if len(guestItems) > 0 {
			items = cart.Merge(items, guestItems)
			s.persist(newKey, items)
			if err := s.store.Remove(GuestPartitionKey); err != nil {
				slog.Warn("failed to clear guest cart partition", "error", err)
			}
		}
	}

	s.items = items
	s.activeKey = newKey
}

// AddToCart inserts a product or bumps its quantity, clamped to stock.
// Redemption placeholders enter with quantity 1 even at zero stock.
func (s *CartStore) AddToCart(product cart.ProductRef, quantity int, isRedeemed bool, pointsCost int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items.Add(product, quantity, isRedeemed, pointsCost)
	s.persist(s.activeKey, s.items)
	return s.view()
}

// RemoveFromCart deletes the line for productID. Unknown ids are ignored.
func (s *CartStore) RemoveFromCart(productID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items.Remove(productID)
	s.persist(s.activeKey, s.items)
	return s.view()
}

// IncreaseQuantity bumps a line by one, capped at its recorded stock.
func (s *CartStore) IncreaseQuantity(productID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items.Increase(productID)
	s.persist(s.activeKey, s.items)
	return s.view()
}

// DecreaseQuantity lowers a line by one, removing it when it reaches zero.
func (s *CartStore) DecreaseQuantity(productID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items.Decrease(productID)
	s.persist(s.activeKey, s.items)
	return s.view()
}

// ClearCart empties the cart without touching the active partition key.
func (s *CartStore) ClearCart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items.Clear()
	s.persist(s.activeKey, s.items)
	return s.view()
}

// View returns the current read model.
func (s *CartStore) View() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *CartStore) view() CartView {
	items := make(cart.Snapshot, len(s.items))
	copy(items, s.items)
	return CartView{
		Items:      items,
		Count:      s.items.Count(),
		TotalPrice: s.items.TotalPrice(),
	}
}

func (s *CartStore) persist(key string, items cart.Snapshot) {
	encoded, err := cart.Encode(items)
	if err != nil {
		slog.Warn("failed to encode cart snapshot", "key", key, "error", err)
		return
	}
	if err := s.store.Set(key, encoded); err != nil {
		slog.Warn("failed to persist cart partition", "key", key, "error", err)
	}
}

// loadSnapshot reads a partition, treating a missing entry or malformed data
// as an empty cart. Parse failures are a recoverable UX path, not a
// data-integrity one, so they never propagate.
func loadSnapshot(store storage.Store, key string) cart.Snapshot {
	raw, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("failed to read cart partition", "key", key, "error", err)
		}
		return cart.Snapshot{}
	}

	items, err := cart.Decode(raw)
	if err != nil {
		slog.Warn("discarding malformed cart partition", "key", key, "error", err)
		return cart.Snapshot{}
	}
	return items
}
