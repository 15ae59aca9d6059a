// internal/services/checkout_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
)

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		Delivery: DeliveryInfo{
			Name:    "Alex Johnson",
			Phone:   "9876543210",
			Address: "123 Pet Lane, Sector 6, Petville",
		},
		Payment: PaymentInfo{Method: models.PaymentMethodCash},
	}
}

func newCheckoutFixture() (*CheckoutService, *store.CartStore, *store.OrderStore, *store.CatalogStore) {
	cartStore := store.NewCartStore()
	orderStore := store.NewOrderStore(nil)
	catalog := store.NewCatalogStore(store.SeedProducts())
	return NewCheckoutService(cartStore, orderStore), cartStore, orderStore, catalog
}

func TestCheckoutRejectsMissingFields(t *testing.T) {
	svc, cartStore, _, catalog := newCheckoutFixture()
	product, _ := catalog.Get(1)
	cartStore.AddToCart(product, 1)

	req := validCheckoutRequest()
	req.Delivery.Name = ""

	_, err := svc.Submit(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCheckoutRejectsMalformedPhone(t *testing.T) {
	svc, cartStore, _, catalog := newCheckoutFixture()
	product, _ := catalog.Get(1)
	cartStore.AddToCart(product, 1)

	for _, phone := range []string{"12345", "98765432101", "98765abc10"} {
		req := validCheckoutRequest()
		req.Delivery.Phone = phone
		_, err := svc.Submit(req)
		assert.Error(t, err, "phone %q must be rejected", phone)
	}
}

func TestCheckoutRequiresCardFieldsForCardPayment(t *testing.T) {
	svc, cartStore, _, catalog := newCheckoutFixture()
	product, _ := catalog.Get(1)
	cartStore.AddToCart(product, 1)

	req := validCheckoutRequest()
	req.Payment.Method = models.PaymentMethodCard

	_, err := svc.Submit(req)
	assert.Error(t, err)

	req.Payment.CardNumber = "4111111111111111"
	req.Payment.Expiry = "09/27"
	req.Payment.CVV = "123"

	order, err := svc.Submit(req)
	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _, _, _ := newCheckoutFixture()

	_, err := svc.Submit(validCheckoutRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutEndToEnd(t *testing.T) {
	svc, cartStore, orderStore, catalog := newCheckoutFixture()
	cartService := NewCartService(cartStore, catalog)

	// Add Product(id=1, price=799) twice.
	_, err := cartService.AddToCart(1, 1)
	assert.NoError(t, err)
	snap, err := cartService.AddToCart(1, 1)
	assert.NoError(t, err)

	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 1598.0, snap.Total)

	order, err := svc.Submit(validCheckoutRequest())
	assert.NoError(t, err)

	assert.Equal(t, models.OrderStatusOrdered, order.Status)
	assert.Equal(t, 1598.0, order.Total)
	assert.Regexp(t, `^ORD-\d{4}$`, order.ID)
	assert.Regexp(t, `^TRK-\d{6}-IND$`, order.TrackingID)
	assert.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 5), order.ExpectedDelivery, time.Minute)

	// Cart is cleared; the order landed in the store.
	assert.Empty(t, cartStore.Snapshot().Lines)
	stored, ok := orderStore.Get(order.ID)
	assert.True(t, ok)
	assert.Equal(t, 1598.0, stored.Total)
}

func TestCheckoutTotalFrozenAtSubmitTime(t *testing.T) {
	svc, cartStore, _, catalog := newCheckoutFixture()
	product, _ := catalog.Get(2)
	cartStore.AddToCart(product, 3)

	order, err := svc.Submit(validCheckoutRequest())
	assert.NoError(t, err)

	// Later cart activity must not touch the created order.
	cartStore.AddToCart(product, 5)
	assert.Equal(t, 3*499.0, order.Total)
}
