// internal/store/cart.go
package store

import (
	"sync"

	"github.com/petville/petcare-backend/internal/models"
)

// CartStore holds the authoritative list of cart lines and publishes an
// immutable snapshot to every subscriber after each mutation. Subscribers are
// notified synchronously, before the mutating call returns; no ordering
// guarantee beyond "all current subscribers see the post-mutation state".
type CartStore struct {
	mtx         sync.Mutex
	lines       []models.CartLine
	subscribers map[int]func(models.CartSnapshot)
	nextSubID   int
}

func NewCartStore() *CartStore {
	return &CartStore{
		subscribers: make(map[int]func(models.CartSnapshot)),
	}
}

// Subscribe registers fn for post-mutation snapshots and returns an
// unsubscribe func.
func (s *CartStore) Subscribe(fn func(models.CartSnapshot)) func() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mtx.Lock()
		defer s.mtx.Unlock()
		delete(s.subscribers, id)
	}
}

// AddToCart merges qty into an existing line for the product or appends a new
// line. Quantities below 1 are treated as 1.
func (s *CartStore) AddToCart(product models.Product, qty int) models.CartSnapshot {
	if qty < 1 {
		qty = 1
	}

	s.mtx.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == product.ID {
			s.lines[i].Quantity += qty
			return s.publishLocked()
		}
	}
	s.lines = append(s.lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  qty,
	})
	return s.publishLocked()
}

// UpdateQuantity applies delta to the line's quantity. The line is removed
// when the new quantity drops to zero or below. Unknown product ids are a
// silent no-op.
func (s *CartStore) UpdateQuantity(productID, delta int) models.CartSnapshot {
	s.mtx.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += delta
			if s.lines[i].Quantity <= 0 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			}
			return s.publishLocked()
		}
	}
	snap := s.snapshotLocked()
	s.mtx.Unlock()
	return snap
}

// RemoveFromCart removes the line if present; no-op otherwise.
func (s *CartStore) RemoveFromCart(productID int) models.CartSnapshot {
	s.mtx.Lock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.publishLocked()
		}
	}
	snap := s.snapshotLocked()
	s.mtx.Unlock()
	return snap
}

// Clear empties the cart and publishes the empty snapshot.
func (s *CartStore) Clear() models.CartSnapshot {
	s.mtx.Lock()
	s.lines = nil
	return s.publishLocked()
}

// Snapshot returns an immutable copy of the current state.
func (s *CartStore) Snapshot() models.CartSnapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.snapshotLocked()
}

// Total is the derived sum of price x quantity over current lines.
func (s *CartStore) Total() float64 {
	return s.Snapshot().Total
}

// Count is the derived sum of line quantities.
func (s *CartStore) Count() int {
	return s.Snapshot().Count
}

func (s *CartStore) snapshotLocked() models.CartSnapshot {
	snap := models.CartSnapshot{Lines: make([]models.CartLine, len(s.lines))}
	copy(snap.Lines, s.lines)
	for _, line := range s.lines {
		snap.Total += line.Price * float64(line.Quantity)
		snap.Count += line.Quantity
	}
	return snap
}

// publishLocked snapshots, releases the lock, then notifies subscribers so a
// callback may re-enter the store.
func (s *CartStore) publishLocked() models.CartSnapshot {
	snap := s.snapshotLocked()
	subs := make([]func(models.CartSnapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mtx.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}
