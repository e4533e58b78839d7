// internal/store/memory/stores.go

// Package memory implements the storage capabilities against process
// memory. It exists for local development when no database connection
// string is configured; everything is lost on restart. Each collection
// preserves insertion order and guards its read-modify-write sequences
// with a mutex, since the HTTP host handles requests concurrently.
package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

// NewStores builds the full in-memory store bundle.
func NewStores() *store.Stores {
	return &store.Stores{
		Contents:        &contentStore{},
		AdvertiseOrders: &advertiseOrderStore{},
		Users:           &userStore{},
		Products:        &productStore{},
		Reviews:         &reviewStore{},
		Orders:          &orderStore{},
		Catalog:         &catalogStore{},
	}
}

// stamp assigns a fresh identifier and timestamps. Identifiers are
// random UUIDs, not positional counters, so deleting records can never
// lead to a reused identifier.
func stamp(base *models.BaseModel) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	base.CreatedAt = now
	base.UpdatedAt = now
}
