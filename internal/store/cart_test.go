// internal/store/cart_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petville/petcare-backend/internal/models"
)

func testProduct(id int, price float64) models.Product {
	return models.Product{ID: id, Name: "Product", Price: price}
}

func TestAddToCartMergesLines(t *testing.T) {
	cart := NewCartStore()

	cart.AddToCart(testProduct(1, 799), 1)
	snap := cart.AddToCart(testProduct(1, 799), 1)

	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 1598.0, snap.Total)
	assert.Equal(t, 2, snap.Count)
}

func TestCartNeverHoldsDuplicateLines(t *testing.T) {
	cart := NewCartStore()

	cart.AddToCart(testProduct(1, 100), 1)
	cart.AddToCart(testProduct(2, 200), 3)
	cart.AddToCart(testProduct(1, 100), 2)
	cart.UpdateQuantity(2, -1)
	snap := cart.Snapshot()

	seen := make(map[int]bool)
	for _, line := range snap.Lines {
		assert.False(t, seen[line.ProductID], "duplicate line for product %d", line.ProductID)
		seen[line.ProductID] = true
		assert.GreaterOrEqual(t, line.Quantity, 1)
	}
}

func TestAddToCartClampsQuantity(t *testing.T) {
	cart := NewCartStore()

	snap := cart.AddToCart(testProduct(1, 100), 0)

	assert.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestUpdateQuantityRemovesLineAtZero(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(testProduct(1, 799), 2)

	snap := cart.UpdateQuantity(1, -2)

	assert.Empty(t, snap.Lines)
	assert.Equal(t, 0.0, snap.Total)
}

func TestUpdateQuantityUnknownProductIsSilentNoOp(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(testProduct(1, 799), 1)

	snap := cart.UpdateQuantity(42, 3)

	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(testProduct(1, 100), 1)
	cart.AddToCart(testProduct(2, 200), 1)

	snap := cart.RemoveFromCart(1)
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].ProductID)

	// Removing an absent line is a no-op.
	snap = cart.RemoveFromCart(99)
	assert.Len(t, snap.Lines, 1)
}

func TestClearCart(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(testProduct(1, 799), 2)

	cart.Clear()

	assert.Equal(t, 0.0, cart.Total())
	assert.Equal(t, 0, cart.Count())
}

func TestTotalTracksMutations(t *testing.T) {
	cart := NewCartStore()

	before := cart.Total()
	cart.AddToCart(testProduct(1, 799), 1)
	assert.Equal(t, before+799, cart.Total())

	cart.AddToCart(testProduct(2, 499), 2)
	assert.Equal(t, 799+2*499.0, cart.Total())
	assert.Equal(t, 3, cart.Count())
}

func TestSubscribersSeePostMutationStateSynchronously(t *testing.T) {
	cart := NewCartStore()

	var received []models.CartSnapshot
	unsubscribe := cart.Subscribe(func(snap models.CartSnapshot) {
		received = append(received, snap)
	})

	cart.AddToCart(testProduct(1, 799), 1)
	assert.Len(t, received, 1, "notification must land before the mutating call returns")
	assert.Equal(t, 799.0, received[0].Total)

	cart.UpdateQuantity(1, 1)
	assert.Len(t, received, 2)
	assert.Equal(t, 1598.0, received[1].Total)

	unsubscribe()
	cart.Clear()
	assert.Len(t, received, 2, "no notifications after unsubscribe")
}

func TestSnapshotIsImmutableCopy(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(testProduct(1, 799), 1)

	snap := cart.Snapshot()
	snap.Lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Snapshot().Lines[0].Quantity)
}
