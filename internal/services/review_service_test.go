// internal/services/review_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store/memory"
)

func TestReviewCreateAndList(t *testing.T) {
	svc := NewReviewService(memory.NewStores().Reviews)
	ctx := context.Background()

	_, err := svc.Create(ctx, "product-1", &CreateReviewRequest{
		Name:    "Fatema",
		Rating:  5,
		Comment: "Excellent sound quality",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "product-2", &CreateReviewRequest{
		Name:    "Hasan",
		Rating:  3,
		Comment: "Average battery life",
	})
	require.NoError(t, err)

	reviews, err := svc.ListByProduct(ctx, "product-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Fatema", reviews[0].Name)

	// A product with no reviews yields an empty list, not null.
	none, err := svc.ListByProduct(ctx, "product-3")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestReviewRatingBounds(t *testing.T) {
	svc := NewReviewService(memory.NewStores().Reviews)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(ctx, "product-1", &CreateReviewRequest{
			Name:    "Tester",
			Rating:  rating,
			Comment: "Out of range",
		})
		require.Error(t, err)
		assertKind(t, err, KindValidation)
	}
}
