// internal/store/postgres/stores.go

// Package postgres implements the storage capabilities on PostgreSQL
// through GORM. Uniqueness lives in unique indexes, title search in a
// GIN tsvector index, and order statistics in a GROUP BY aggregate.
package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

// NewStores builds the full Postgres-backed store bundle.
func NewStores(db *gorm.DB) *store.Stores {
	return &store.Stores{
		Contents:        &contentStore{db: db},
		AdvertiseOrders: &advertiseOrderStore{db: db},
		Users:           &userStore{db: db},
		Products:        &productStore{db: db},
		Reviews:         &reviewStore{db: db},
		Orders:          &orderStore{db: db},
		Catalog:         &catalogStore{db: db},
	}
}

// translate maps GORM errors onto the backend-agnostic store errors so
// callers never branch on driver error text. Requires TranslateError in
// the gorm config.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	default:
		return err
	}
}
