// internal/services/product_service_test.go
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

func TestProductCreateAndGet(t *testing.T) {
	stores := memory.NewStores()
	svc := NewProductService(stores.Products)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateProductRequest{
		Title:            "Wireless Headphones X100",
		Price:            2500,
		ShortDescription: "Noise cancelling over-ear headphones",
		Features:         []string{"Bluetooth 5.3", "40h battery"},
		FAQ:              []models.FAQItem{{Question: "Warranty?", Answer: "1 year"}},
	})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones X100", found.Title)
	assert.Len(t, found.FAQ, 1)

	_, err = svc.GetByID(ctx, uuid.New())
	require.Error(t, err)
	assertKind(t, err, KindNotFound)
}

func TestProductCreateRejectsMissingTitle(t *testing.T) {
	svc := NewProductService(memory.NewStores().Products)

	_, err := svc.Create(context.Background(), &CreateProductRequest{Price: 100})
	require.Error(t, err)
	assertKind(t, err, KindValidation)
}

func TestSeededSampleProducts(t *testing.T) {
	stores := memory.NewStores()
	require.NoError(t, memory.SeedSampleProducts(context.Background(), stores.Products))

	svc := NewProductService(stores.Products)
	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
