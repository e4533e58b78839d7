// internal/services/advertise_order_service.go
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// AdvertiseOrderService handles orders placed against offers. Each
// order snapshots the content's title, slug and prices at creation;
// later content edits never change an existing order.
type AdvertiseOrderService struct {
	orders   store.AdvertiseOrderStore
	contents store.ContentStore
}

func NewAdvertiseOrderService(orders store.AdvertiseOrderStore, contents store.ContentStore) *AdvertiseOrderService {
	return &AdvertiseOrderService{orders: orders, contents: contents}
}

type CreateAdvertiseOrderRequest struct {
	ContentID     uuid.UUID            `json:"contentId" validate:"required"`
	ContentTitle  string               `json:"contentTitle" validate:"required"`
	ContentSlug   string               `json:"contentSlug"`
	Price         float64              `json:"price" validate:"required,gt=0"`
	OriginalPrice float64              `json:"originalPrice" validate:"omitempty,gte=0"`
	Name          string               `json:"name" validate:"required"`
	Phone         string               `json:"phone" validate:"required"`
	Address       string               `json:"address" validate:"required"`
	Quantity      int                  `json:"quantity" validate:"required,min=1"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Notes         string               `json:"notes"`
}

type UpdateAdvertiseOrderRequest struct {
	Status        *models.OrderStatus   `json:"status"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
	Notes         *string               `json:"notes"`
}

func (s *AdvertiseOrderService) Create(ctx context.Context, req *CreateAdvertiseOrderRequest) (*models.AdvertiseOrder, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	title := req.ContentTitle
	slug := req.ContentSlug
	price := req.Price
	originalPrice := req.OriginalPrice

	// Snapshot authoritative values from the referenced content when it
	// exists. The reference is a plain identifier with no enforced
	// integrity, so a missing content falls back to the request fields.
	content, err := s.contents.FindByID(ctx, req.ContentID)
	switch {
	case err == nil:
		title = content.Title
		slug = content.Slug
		price = content.Price
		originalPrice = content.OriginalPrice
	case errors.Is(err, store.ErrNotFound):
		// keep request-supplied snapshot
	default:
		return nil, Internal("Error fetching advertise content", err)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCashOnDelivery
	}
	if !paymentMethod.Valid() {
		return nil, Invalid("Invalid payment method")
	}

	savings := 0.0
	if originalPrice > price {
		savings = (originalPrice - price) * float64(req.Quantity)
	}

	order := &models.AdvertiseOrder{
		ContentID:     req.ContentID,
		ContentTitle:  title,
		ContentSlug:   slug,
		Price:         price,
		OriginalPrice: originalPrice,
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Quantity:      req.Quantity,
		TotalPrice:    price * float64(req.Quantity),
		Savings:       savings,
		Status:        models.OrderStatusPending,
		PaymentMethod: paymentMethod,
		PaymentStatus: models.PaymentStatusUnpaid,
		Notes:         req.Notes,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, Internal("Error creating advertise order", err)
	}
	return order, nil
}

// List filters orders by status, content and phone. Unknown status
// values are rejected rather than silently matching nothing.
func (s *AdvertiseOrderService) List(ctx context.Context, status, contentID, phone, sortBy string) ([]models.AdvertiseOrder, error) {
	q := store.AdvertiseOrderQuery{Phone: phone, Sort: store.ContentSortNewest}

	if status != "" {
		orderStatus := models.OrderStatus(status)
		if !orderStatus.Valid() {
			return nil, Invalid("Invalid order status")
		}
		q.Status = orderStatus
	}
	if contentID != "" {
		id, err := uuid.Parse(contentID)
		if err != nil {
			return nil, Invalid("Invalid content id")
		}
		q.ContentID = id
	}
	if sortBy == "oldest" {
		q.Sort = store.ContentSortOldest
	}

	orders, err := s.orders.FindMany(ctx, q)
	if err != nil {
		return nil, Internal("Error fetching advertise orders", err)
	}
	return orders, nil
}

func (s *AdvertiseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Advertise order not found")
		}
		return nil, Internal("Error fetching advertise order", err)
	}
	return order, nil
}

// Update mutates status, payment fields and notes. There is no enforced
// transition graph: any status is reachable from any other. Flagged for
// product-owner review; see DESIGN.md.
func (s *AdvertiseOrderService) Update(ctx context.Context, id uuid.UUID, req *UpdateAdvertiseOrderRequest) (*models.AdvertiseOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Advertise order not found")
		}
		return nil, Internal("Error fetching advertise order", err)
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, Invalid("Invalid order status")
		}
		order.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		if !req.PaymentMethod.Valid() {
			return nil, Invalid("Invalid payment method")
		}
		order.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		if !req.PaymentStatus.Valid() {
			return nil, Invalid("Invalid payment status")
		}
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := s.orders.Update(ctx, order); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Advertise order not found")
		}
		return nil, Internal("Error updating advertise order", err)
	}
	return order, nil
}

func (s *AdvertiseOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("Advertise order not found")
		}
		return Internal("Error deleting advertise order", err)
	}
	return nil
}

func (s *AdvertiseOrderService) Stats(ctx context.Context) (*models.AdvertiseOrderStats, error) {
	stats, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, Internal("Error computing order statistics", err)
	}
	return stats, nil
}
