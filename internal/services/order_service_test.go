// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
)

func newOrderFixture(orders []models.Order) (*OrderService, *store.CartStore) {
	cartStore := store.NewCartStore()
	catalog := store.NewCatalogStore(store.SeedProducts())
	cartService := NewCartService(cartStore, catalog)
	return NewOrderService(store.NewOrderStore(orders), cartService), cartStore
}

func TestStageCompletedForShippedOrder(t *testing.T) {
	order := models.Order{Status: models.OrderStatusShipped}

	assert.True(t, StageCompleted(order, models.OrderStatusOrdered))
	assert.True(t, StageCompleted(order, models.OrderStatusPacked))
	assert.True(t, StageCompleted(order, models.OrderStatusShipped))
	assert.False(t, StageCompleted(order, models.OrderStatusOutForDelivery))
	assert.False(t, StageCompleted(order, models.OrderStatusDelivered))
}

func TestStageCompletedForCancelledOrder(t *testing.T) {
	order := models.Order{Status: models.OrderStatusCancelled}

	assert.True(t, StageCompleted(order, models.OrderStatusOrdered))
	for _, stage := range models.StageSequence[1:] {
		assert.False(t, StageCompleted(order, stage), "stage %s must not be completed", stage)
	}
}

func TestTimeline(t *testing.T) {
	svc, _ := newOrderFixture([]models.Order{
		{ID: "ORD-1", Status: models.OrderStatusOutForDelivery},
	})

	stages, err := svc.Timeline("ORD-1")
	assert.NoError(t, err)
	assert.Len(t, stages, 5)

	completed := 0
	for _, s := range stages {
		if s.Completed {
			completed++
		}
	}
	assert.Equal(t, 4, completed)
	assert.False(t, stages[4].Completed)
}

func TestCancelOrder(t *testing.T) {
	svc, _ := newOrderFixture([]models.Order{
		{ID: "ORD-1", Status: models.OrderStatusPacked},
		{ID: "ORD-2", Status: models.OrderStatusDelivered},
	})

	order, err := svc.Cancel("ORD-1")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	// Cancelled is terminal.
	_, err = svc.Cancel("ORD-1")
	assert.ErrorIs(t, err, ErrOrderNotCancellable)

	_, err = svc.Cancel("ORD-2")
	assert.ErrorIs(t, err, ErrOrderNotCancellable)

	_, err = svc.Cancel("ORD-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderRestoresCartLines(t *testing.T) {
	svc, cartStore := newOrderFixture([]models.Order{
		{
			ID:     "ORD-1",
			Status: models.OrderStatusDelivered,
			Lines: []models.OrderLine{
				{ProductID: 1, Name: "Drools Chicken Puppy Food", Quantity: 2},
				{ProductID: 77, Name: "Discontinued", Quantity: 1},
			},
		},
	})

	snap, err := svc.Reorder("ORD-1")
	assert.NoError(t, err)

	// Product 77 has left the catalog and is skipped.
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].ProductID)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 1598.0, cartStore.Total())
}

func TestListOrdersNewestFirst(t *testing.T) {
	now := time.Now()
	svc, _ := newOrderFixture(store.SeedOrders(now))

	orders := svc.ListOrders()
	assert.Len(t, orders, 2)
	assert.Equal(t, "ORD-9001", orders[0].ID)
	assert.Equal(t, "ORD-7711", orders[1].ID)
}
