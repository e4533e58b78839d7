// internal/models/review.go
package models

// Review is a customer product review keyed by the product identifier.
type Review struct {
	BaseModel
	ProductID string `json:"productId" gorm:"size:64;not null;index"`
	Name      string `json:"name" gorm:"size:255;not null"`
	Rating    int    `json:"rating" gorm:"not null"`
	Comment   string `json:"comment" gorm:"type:text;not null"`
}
