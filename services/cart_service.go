package services

import (
	"encoding/json"
	"log"
	"sync"

	"canteen/entity"
	"canteen/repository"
)

// StorageKey names the single persisted state blob.
const StorageKey = "campus-canteen-storage"

// persistedState is the blob layout: the whole engine state in one value.
type persistedState struct {
	Items  []entity.CartItem `json:"items"`
	Orders []entity.Order    `json:"orders"`
}

// CartStore is the single source of truth for cart lines and order
// history. All mutation goes through its methods; each public operation
// persists the full state write-through before returning. It is owned by
// the application root and injected into the HTTP layer.
type CartStore struct {
	mu     sync.Mutex
	items  []entity.CartItem
	orders []entity.Order

	repo   *repository.StateRepository
	sched  Scheduler
	delays TransitionDelays
}

// NewCartStore restores any previously saved state and returns a ready
// store. repo and sched may be nil (no persistence / no automatic
// progression), which tests use.
func NewCartStore(repo *repository.StateRepository, sched Scheduler, delays TransitionDelays) *CartStore {
	s := &CartStore{repo: repo, sched: sched, delays: delays}
	s.restore()
	return s
}

func (s *CartStore) restore() {
	if s.repo == nil {
		return
	}
	raw, err := s.repo.Load(StorageKey)
	if err != nil {
		log.Printf("cart store: restore failed: %v", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	var st persistedState
	if err := json.Unmarshal(raw, &st); err != nil {
		log.Printf("cart store: saved state unreadable, starting fresh: %v", err)
		return
	}
	s.items, s.orders = st.Items, st.Orders
}

// persist is best-effort write-through: a failed save is a warning, never
// a failed operation. Callers hold s.mu.
func (s *CartStore) persist() {
	if s.repo == nil {
		return
	}
	raw, err := json.Marshal(persistedState{Items: s.items, Orders: s.orders})
	if err == nil {
		err = s.repo.Save(StorageKey, raw)
	}
	if err != nil {
		log.Printf("cart store: save failed: %v", err)
	}
}

// AddItem puts one unit of an uncustomized item in the cart, merging into
// the existing uncustomized line for the same id if there is one.
func (s *CartStore) AddItem(item entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID && len(s.items[i].Customizations) == 0 {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, entity.CartItem{MenuItem: item, Quantity: 1})
	s.persist()
}

// AddItemWithCustomization prices the selection and merges one unit into
// the line with the same canonical (id, customizations) key, or appends a
// new line.
func (s *CartStore) AddItemWithCustomization(item entity.MenuItem, customizations entity.Customizations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entity.LineKey(item.ID, customizations)
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, entity.CartItem{
		MenuItem:           item,
		Quantity:           1,
		Customizations:     customizations,
		CustomizationPrice: CustomizationPrice(item.Category, customizations),
	})
	s.persist()
}

// UpdateQuantity sets the matching line's quantity outright; qty <= 0
// removes the line. Unknown lines are a no-op.
func (s *CartStore) UpdateQuantity(id string, qty int, customizations entity.Customizations) {
	if qty <= 0 {
		s.RemoveItem(id, customizations)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entity.LineKey(id, customizations)
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity = qty
			s.persist()
			return
		}
	}
}

// RemoveItem deletes the matching line. Unknown lines are a no-op.
func (s *CartStore) RemoveItem(id string, customizations entity.Customizations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entity.LineKey(id, customizations)
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the cart lines for rendering.
func (s *CartStore) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartItem, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// TotalItems is the sum of quantities across all lines.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItemsLocked()
}

// TotalPrice is the authoritative price: Σ (price + customization delta)
// × quantity. Order totals are frozen snapshots of this value.
func (s *CartStore) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPriceLocked()
}

func (s *CartStore) totalItemsLocked() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *CartStore) totalPriceLocked() int64 {
	var total int64
	for _, it := range s.items {
		total += it.LineTotal()
	}
	return total
}
