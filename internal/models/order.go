// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderItem is a cart line captured at checkout. The product reference
// is a plain string identifier with no enforced referential integrity.
type OrderItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return json.Marshal(OrderItems{})
	}
	return json.Marshal(o)
}

func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Order is a plain checkout order from the storefront cart.
type Order struct {
	BaseModel
	Name    string     `json:"name" gorm:"size:255;not null"`
	Phone   string     `json:"phone" gorm:"size:50;not null"`
	Address string     `json:"address" gorm:"type:text;not null"`
	Items   OrderItems `json:"items" gorm:"type:jsonb"`
	Total   float64    `json:"total" gorm:"type:decimal(12,2);not null"`
}
