// internal/services/order_service_test.go
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

func TestCheckoutOrderCreate(t *testing.T) {
	svc := NewOrderService(memory.NewStores().Orders)

	order, err := svc.Create(context.Background(), &CreateOrderRequest{
		Name:    "Rahim Uddin",
		Phone:   "01712345678",
		Address: "House 7, Road 3, Dhanmondi, Dhaka",
		Items: []models.OrderItem{
			{ID: "p1", Title: "Wireless Headphones X100", Price: 2500, Quantity: 2},
		},
		Total: 5000,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Len(t, order.Items, 1)
}

func TestCheckoutOrderRequiresItems(t *testing.T) {
	svc := NewOrderService(memory.NewStores().Orders)

	_, err := svc.Create(context.Background(), &CreateOrderRequest{
		Name:    "Rahim Uddin",
		Phone:   "01712345678",
		Address: "Dhaka",
		Items:   []models.OrderItem{},
		Total:   100,
	})
	require.Error(t, err)
	assertKind(t, err, KindValidation)
}
