// internal/services/advertise_order_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store/memory"
)

type orderServiceFixture struct {
	contents *AdvertiseContentService
	orders   *AdvertiseOrderService
}

func newOrderFixture() *orderServiceFixture {
	stores := memory.NewStores()
	return &orderServiceFixture{
		contents: NewAdvertiseContentService(stores.Contents),
		orders:   NewAdvertiseOrderService(stores.AdvertiseOrders, stores.Contents),
	}
}

func validOrderRequest(contentID uuid.UUID) *CreateAdvertiseOrderRequest {
	return &CreateAdvertiseOrderRequest{
		ContentID:     contentID,
		ContentTitle:  "Client Supplied Title",
		ContentSlug:   "client-supplied-slug",
		Price:         10,
		OriginalPrice: 15,
		Name:          "Rahim Uddin",
		Phone:         "01712345678",
		Address:       "House 7, Road 3, Dhanmondi, Dhaka",
		Quantity:      3,
	}
}

func TestOrderCreateSnapshotsFromContent(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	contentReq := validContentRequest("Winter Mega Deal")
	contentReq.Price = 10
	contentReq.OriginalPrice = 15
	content, err := f.contents.Create(ctx, contentReq)
	require.NoError(t, err)

	req := validOrderRequest(content.ID)
	req.Price = 999           // ignored: the stored content wins
	req.OriginalPrice = 12345 // ignored
	req.ContentTitle = "Stale Client Title"

	order, err := f.orders.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "Winter Mega Deal", order.ContentTitle)
	assert.Equal(t, "winter-mega-deal", order.ContentSlug)
	assert.Equal(t, 10.0, order.Price)
	assert.Equal(t, 15.0, order.OriginalPrice)
	assert.Equal(t, 30.0, order.TotalPrice)
	assert.Equal(t, 15.0, order.Savings)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentMethodCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
}

func TestOrderCreateMissingContentFallsBackToRequest(t *testing.T) {
	f := newOrderFixture()

	req := validOrderRequest(uuid.New())
	order, err := f.orders.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Client Supplied Title", order.ContentTitle)
	assert.Equal(t, "client-supplied-slug", order.ContentSlug)
	assert.Equal(t, 10.0, order.Price)
	assert.Equal(t, 30.0, order.TotalPrice)
	assert.Equal(t, 15.0, order.Savings)
}

func TestOrderCreateNoSavingsWhenOriginalBelowPrice(t *testing.T) {
	f := newOrderFixture()

	req := validOrderRequest(uuid.New())
	req.OriginalPrice = 8
	order, err := f.orders.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0.0, order.Savings)
}

func TestOrderCreateRejectsInvalidQuantity(t *testing.T) {
	f := newOrderFixture()

	req := validOrderRequest(uuid.New())
	req.Quantity = 0
	_, err := f.orders.Create(context.Background(), req)
	require.Error(t, err)
	assertKind(t, err, KindValidation)
}

func TestOrderCreateRejectsUnknownPaymentMethod(t *testing.T) {
	f := newOrderFixture()

	req := validOrderRequest(uuid.New())
	req.PaymentMethod = "barter"
	_, err := f.orders.Create(context.Background(), req)
	require.Error(t, err)
	assertKind(t, err, KindValidation)
}

func TestOrderSnapshotSurvivesContentEdit(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	content, err := f.contents.Create(ctx, validContentRequest("Original Offer"))
	require.NoError(t, err)

	order, err := f.orders.Create(ctx, validOrderRequest(content.ID))
	require.NoError(t, err)

	newTitle := "Renamed Offer"
	newPrice := 5000.0
	_, err = f.contents.Update(ctx, content.ID, &UpdateContentRequest{
		Title: &newTitle,
		Price: &newPrice,
	})
	require.NoError(t, err)

	found, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original Offer", found.ContentTitle)
	assert.NotEqual(t, newPrice, found.Price)
}

func TestOrderListFilters(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	first, err := f.orders.Create(ctx, validOrderRequest(uuid.New()))
	require.NoError(t, err)

	second := validOrderRequest(uuid.New())
	second.Phone = "01987654321"
	_, err = f.orders.Create(ctx, second)
	require.NoError(t, err)

	confirmed := models.OrderStatusConfirmed
	_, err = f.orders.Update(ctx, first.ID, &UpdateAdvertiseOrderRequest{Status: &confirmed})
	require.NoError(t, err)

	byStatus, err := f.orders.List(ctx, "confirmed", "", "", "")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, first.ID, byStatus[0].ID)

	byPhone, err := f.orders.List(ctx, "", "", "01987654321", "")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)

	_, err = f.orders.List(ctx, "teleported", "", "", "")
	require.Error(t, err)
	assertKind(t, err, KindValidation)

	_, err = f.orders.List(ctx, "", "not-a-uuid", "", "")
	require.Error(t, err)
	assertKind(t, err, KindValidation)
}

func TestOrderUpdateRejectsInvalidStatus(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	order, err := f.orders.Create(ctx, validOrderRequest(uuid.New()))
	require.NoError(t, err)

	bad := models.OrderStatus("teleported")
	_, err = f.orders.Update(ctx, order.ID, &UpdateAdvertiseOrderRequest{Status: &bad})
	require.Error(t, err)
	assertKind(t, err, KindValidation)
}

func TestOrderStats(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	first, err := f.orders.Create(ctx, validOrderRequest(uuid.New())) // total 30
	require.NoError(t, err)

	second := validOrderRequest(uuid.New())
	second.Quantity = 1 // total 10
	_, err = f.orders.Create(ctx, second)
	require.NoError(t, err)

	delivered := models.OrderStatusDelivered
	_, err = f.orders.Update(ctx, first.ID, &UpdateAdvertiseOrderRequest{Status: &delivered})
	require.NoError(t, err)

	stats, err := f.orders.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, 40.0, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.ByStatus[models.OrderStatusDelivered].Count)
	assert.Equal(t, 30.0, stats.ByStatus[models.OrderStatusDelivered].TotalRevenue)
	assert.Equal(t, int64(1), stats.ByStatus[models.OrderStatusPending].Count)
}

func TestOrderDeleteTwice(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	order, err := f.orders.Create(ctx, validOrderRequest(uuid.New()))
	require.NoError(t, err)

	require.NoError(t, f.orders.Delete(ctx, order.ID))

	err = f.orders.Delete(ctx, order.ID)
	require.Error(t, err)
	assertKind(t, err, KindNotFound)
}
