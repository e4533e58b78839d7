// internal/models/advertise_content.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"time"

	"github.com/lib/pq"
)

// ContentSection is one of the five independently toggleable content
// blocks on an advertise content page.
type ContentSection struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"isActive"`
}

// DefaultContentSection matches the section defaults applied when a
// section is omitted on create.
func DefaultContentSection() ContentSection {
	return ContentSection{Title: "", Content: "", IsActive: true}
}

// DiscountShow is a discount badge string with its own active flag.
type DiscountShow struct {
	Text     string `json:"text"`
	IsActive bool   `json:"isActive"`
}

type DiscountShows []DiscountShow

func (d DiscountShows) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(DiscountShows{})
	}
	return json.Marshal(d)
}

func (d *DiscountShows) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// AdvertiseContent is a time-boxed promotional offer.
type AdvertiseContent struct {
	BaseModel
	Title         string         `json:"title" gorm:"size:255;not null"`
	Slug          string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	OfferEndTime  time.Time      `json:"offerEndTime" gorm:"not null;index"`
	ThumbImage    string         `json:"thumbImage" gorm:"size:1024;not null"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice float64        `json:"originalPrice" gorm:"type:decimal(10,2);default:0"`
	RegularImages pq.StringArray `json:"regularImages" gorm:"type:text[]"`
	Videos        pq.StringArray `json:"videos" gorm:"type:text[]"`
	DiscountShows DiscountShows  `json:"discountShows" gorm:"type:jsonb"`
	Section1      ContentSection `json:"section1" gorm:"embedded;embeddedPrefix:section1_"`
	Section2      ContentSection `json:"section2" gorm:"embedded;embeddedPrefix:section2_"`
	Section3      ContentSection `json:"section3" gorm:"embedded;embeddedPrefix:section3_"`
	Section4      ContentSection `json:"section4" gorm:"embedded;embeddedPrefix:section4_"`
	Section5      ContentSection `json:"section5" gorm:"embedded;embeddedPrefix:section5_"`

	// Computed at read time, never stored.
	TimeRemaining *TimeRemaining `json:"timeRemaining,omitempty" gorm:"-"`
}

// AttachTimeRemaining computes the countdown against the current clock.
func (c *AdvertiseContent) AttachTimeRemaining() {
	tr := ComputeTimeRemaining(c.OfferEndTime)
	c.TimeRemaining = &tr
}

// UnitSaving is the per-item saving when an original price is set above
// the offer price.
func (c *AdvertiseContent) UnitSaving() float64 {
	if c.OriginalPrice > c.Price {
		return c.OriginalPrice - c.Price
	}
	return 0
}
