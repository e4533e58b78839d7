// internal/services/catalog_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store/memory"
)

func TestCatalogColorCreateAndList(t *testing.T) {
	svc := NewCatalogService(memory.NewStores().Catalog)
	ctx := context.Background()

	color, err := svc.CreateColor(ctx, &CreateColorRequest{Name: "Midnight Black", HexCode: "#000000"})
	require.NoError(t, err)
	assert.True(t, color.IsActive)

	colors, err := svc.ListColors(ctx)
	require.NoError(t, err)
	assert.Len(t, colors, 1)
}

func TestCatalogColorDuplicateName(t *testing.T) {
	svc := NewCatalogService(memory.NewStores().Catalog)
	ctx := context.Background()

	_, err := svc.CreateColor(ctx, &CreateColorRequest{Name: "Midnight Black"})
	require.NoError(t, err)

	_, err = svc.CreateColor(ctx, &CreateColorRequest{Name: "Midnight Black"})
	require.Error(t, err)
	assertKind(t, err, KindConflict)
}

func TestCatalogStorageCreate(t *testing.T) {
	svc := NewCatalogService(memory.NewStores().Catalog)
	ctx := context.Background()

	storage, err := svc.CreateStorage(ctx, &CreateStorageRequest{RAM: "8GB", ROM: "256GB"})
	require.NoError(t, err)
	assert.Equal(t, "8GB", storage.RAM)

	storages, err := svc.ListStorages(ctx)
	require.NoError(t, err)
	assert.Len(t, storages, 1)
}

func TestCatalogConditionDuplicate(t *testing.T) {
	svc := NewCatalogService(memory.NewStores().Catalog)
	ctx := context.Background()

	_, err := svc.CreateDeviceCondition(ctx, &CreateDeviceConditionRequest{Condition: "Like New"})
	require.NoError(t, err)

	_, err = svc.CreateDeviceCondition(ctx, &CreateDeviceConditionRequest{Condition: "Like New"})
	require.Error(t, err)
	assertKind(t, err, KindConflict)
}
