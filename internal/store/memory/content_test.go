// internal/store/memory/content_test.go
package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

func newTestContent(title, slug string, endsIn time.Duration) *models.AdvertiseContent {
	return &models.AdvertiseContent{
		Title:        title,
		Slug:         slug,
		OfferEndTime: time.Now().Add(endsIn),
		ThumbImage:   "https://example.com/thumb.jpg",
		Price:        100,
	}
}

func TestContentStoreCreateAssignsIdentity(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	content := newTestContent("Summer Sale", "summer-sale", time.Hour)
	require.NoError(t, s.Create(ctx, content))

	assert.NotEqual(t, uuid.Nil, content.ID)
	assert.False(t, content.CreatedAt.IsZero())

	found, err := s.FindByID(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", found.Title)
}

func TestContentStoreDuplicateSlug(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestContent("First", "same-slug", time.Hour)))
	err := s.Create(ctx, newTestContent("Second", "same-slug", time.Hour))
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestContentStoreFindManyStatusFilter(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestContent("Active", "active-offer", time.Hour)))
	require.NoError(t, s.Create(ctx, newTestContent("Expired", "expired-offer", -time.Hour)))

	active, err := s.FindMany(ctx, store.ContentQuery{Status: store.ContentStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].Title)

	expired, err := s.FindMany(ctx, store.ContentQuery{Status: store.ContentStatusExpired})
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "Expired", expired[0].Title)

	all, err := s.FindMany(ctx, store.ContentQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestContentStoreFindManyEndingSoonSort(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestContent("Later", "later", 48*time.Hour)))
	require.NoError(t, s.Create(ctx, newTestContent("Sooner", "sooner", time.Hour)))

	results, err := s.FindMany(ctx, store.ContentQuery{
		Status: store.ContentStatusActive,
		Sort:   store.ContentSortEndingSoon,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Sooner", results[0].Title)
	assert.Equal(t, "Later", results[1].Title)
}

func TestContentStoreSearchIsCaseInsensitive(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestContent("Mega Winter Deal", "mega-winter-deal", time.Hour)))
	require.NoError(t, s.Create(ctx, newTestContent("Summer Sale", "summer-sale", time.Hour)))

	results, err := s.Search(ctx, "WINTER")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mega Winter Deal", results[0].Title)
}

func TestContentStoreUpdatePreservesCreatedAt(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	content := newTestContent("Original", "original", time.Hour)
	require.NoError(t, s.Create(ctx, content))
	createdAt := content.CreatedAt

	content.Title = "Renamed"
	require.NoError(t, s.Update(ctx, content))

	found, err := s.FindByID(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Title)
	assert.Equal(t, createdAt, found.CreatedAt)
}

func TestContentStoreUpdateRejectsSlugCollision(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	first := newTestContent("First", "first", time.Hour)
	second := newTestContent("Second", "second", time.Hour)
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	second.Slug = "first"
	assert.ErrorIs(t, s.Update(ctx, second), store.ErrDuplicate)
}

func TestContentStoreDeleteTwice(t *testing.T) {
	s := &contentStore{}
	ctx := context.Background()

	content := newTestContent("Doomed", "doomed", time.Hour)
	require.NoError(t, s.Create(ctx, content))

	require.NoError(t, s.Delete(ctx, content.ID))
	assert.ErrorIs(t, s.Delete(ctx, content.ID), store.ErrNotFound)

	_, err := s.FindByID(ctx, content.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
