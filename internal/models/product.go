// internal/models/product.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
)

type FAQItem struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

type FAQList []FAQItem

func (f FAQList) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal(FAQList{})
	}
	return json.Marshal(f)
}

func (f *FAQList) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, f)
}

type Product struct {
	BaseModel
	Title            string         `json:"title" gorm:"size:255;not null"`
	Price            float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	ShortDescription string         `json:"shortDescription" gorm:"type:text"`
	Details          string         `json:"details" gorm:"type:text"`
	FAQ              FAQList        `json:"faq" gorm:"type:jsonb"`
	Features         pq.StringArray `json:"features" gorm:"type:text[]"`
	TechnicalDetails JSONB          `json:"technicalDetails" gorm:"type:jsonb"`
}
