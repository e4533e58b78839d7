// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
)

// Backend-agnostic storage errors. Both implementations translate their
// native failures into these so the service layer never sees driver
// error text.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// ContentStatusFilter narrows content listings by offer expiry.
type ContentStatusFilter string

const (
	ContentStatusAll     ContentStatusFilter = ""
	ContentStatusActive  ContentStatusFilter = "active"
	ContentStatusExpired ContentStatusFilter = "expired"
)

// ContentSort orders content listings.
type ContentSort string

const (
	ContentSortNewest     ContentSort = "newest"      // createdAt desc (default)
	ContentSortOldest     ContentSort = "oldest"      // createdAt asc
	ContentSortEndingSoon ContentSort = "ending-soon" // offerEndTime asc
)

type ContentQuery struct {
	Status ContentStatusFilter
	Sort   ContentSort
}

// ContentStore is the storage capability for advertise contents. Two
// implementations exist: a persistent one on Postgres and a transient
// in-process one used when no database is configured. One is picked at
// composition time and threaded through the service layer.
type ContentStore interface {
	Create(ctx context.Context, content *models.AdvertiseContent) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseContent, error)
	FindBySlug(ctx context.Context, slug string) (*models.AdvertiseContent, error)
	FindMany(ctx context.Context, q ContentQuery) ([]models.AdvertiseContent, error)
	// Search matches on title. The in-memory backend does case-insensitive
	// substring matching while the persistent backend does relevance-ranked
	// text search; rankings and result sets may differ between the two for
	// the same query. Accepted divergence.
	Search(ctx context.Context, query string) ([]models.AdvertiseContent, error)
	Update(ctx context.Context, content *models.AdvertiseContent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdvertiseOrderQuery struct {
	Status    models.OrderStatus
	ContentID uuid.UUID
	Phone     string
	Sort      ContentSort // newest/oldest on createdAt
}

type AdvertiseOrderStore interface {
	Create(ctx context.Context, order *models.AdvertiseOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseOrder, error)
	FindMany(ctx context.Context, q AdvertiseOrderQuery) ([]models.AdvertiseOrder, error)
	Update(ctx context.Context, order *models.AdvertiseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Stats aggregates order counts and revenue, grouped by status plus a
	// global total.
	Stats(ctx context.Context) (*models.AdvertiseOrderStats, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindByProduct(ctx context.Context, productID string) ([]models.Review, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

// CatalogStore covers the device-listing taxonomies.
type CatalogStore interface {
	ListColors(ctx context.Context) ([]models.Color, error)
	CreateColor(ctx context.Context, color *models.Color) error
	ListDeviceModels(ctx context.Context) ([]models.DeviceModel, error)
	CreateDeviceModel(ctx context.Context, deviceModel *models.DeviceModel) error
	ListSims(ctx context.Context) ([]models.Sim, error)
	CreateSim(ctx context.Context, sim *models.Sim) error
	ListStorages(ctx context.Context) ([]models.Storage, error)
	CreateStorage(ctx context.Context, storage *models.Storage) error
	ListWarranties(ctx context.Context) ([]models.Warranty, error)
	CreateWarranty(ctx context.Context, warranty *models.Warranty) error
	ListDeviceConditions(ctx context.Context) ([]models.DeviceCondition, error)
	CreateDeviceCondition(ctx context.Context, condition *models.DeviceCondition) error
}

// Stores bundles every storage capability. The composition root builds
// exactly one bundle per process.
type Stores struct {
	Contents        ContentStore
	AdvertiseOrders AdvertiseOrderStore
	Users           UserStore
	Products        ProductStore
	Reviews         ReviewStore
	Orders          OrderStore
	Catalog         CatalogStore
}
