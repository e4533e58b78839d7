// internal/models/advertise_order.go
package models

import "github.com/google/uuid"

// AdvertiseOrder is an order placed against an advertise content offer.
// Title, slug and prices are denormalized snapshots taken at order time:
// the order is an immutable historical record and later edits to the
// referenced content never touch it.
type AdvertiseOrder struct {
	BaseModel
	ContentID     uuid.UUID     `json:"contentId" gorm:"type:uuid;not null;index"`
	ContentTitle  string        `json:"contentTitle" gorm:"size:255;not null"`
	ContentSlug   string        `json:"contentSlug" gorm:"size:255"`
	Price         float64       `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice float64       `json:"originalPrice" gorm:"type:decimal(10,2);default:0"`
	Name          string        `json:"name" gorm:"size:255;not null"`
	Phone         string        `json:"phone" gorm:"size:50;not null;index"`
	Address       string        `json:"address" gorm:"type:text;not null"`
	Quantity      int           `json:"quantity" gorm:"not null"`
	TotalPrice    float64       `json:"totalPrice" gorm:"type:decimal(12,2);not null"`
	Savings       float64       `json:"savings" gorm:"type:decimal(12,2);default:0"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentMethod PaymentMethod `json:"paymentMethod" gorm:"type:varchar(30);default:'cash_on_delivery'"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:varchar(20);default:'unpaid'"`
	Notes         string        `json:"notes" gorm:"type:text"`
}

// AdvertiseOrderStats is the aggregate view over all advertise orders.
type AdvertiseOrderStats struct {
	TotalOrders  int64                                    `json:"totalOrders"`
	TotalRevenue float64                                  `json:"totalRevenue"`
	ByStatus     map[OrderStatus]AdvertiseOrderStatusStat `json:"byStatus"`
}

type AdvertiseOrderStatusStat struct {
	Count        int64   `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
}
