// internal/models/catalog.go
package models

// Catalog taxonomies for device listings. Plain records with no derived
// state; references between them are string identifiers only.

type Color struct {
	BaseModel
	Name     string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	HexCode  string `json:"hexCode" gorm:"size:20"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

type DeviceModel struct {
	BaseModel
	Name           string `json:"name" gorm:"size:255;not null"`
	BrandID        string `json:"brandId" gorm:"size:64;not null;index"`
	ReleaseYear    int    `json:"releaseYear"`
	Specifications JSONB  `json:"specifications" gorm:"type:jsonb"`
	IsActive       bool   `json:"isActive" gorm:"default:true"`
}

type Sim struct {
	BaseModel
	Type        string `json:"type" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}

type Storage struct {
	BaseModel
	RAM string `json:"ram" gorm:"size:50;not null"`
	ROM string `json:"rom" gorm:"size:50;not null"`
}

type Warranty struct {
	BaseModel
	Duration    string `json:"duration" gorm:"size:100;not null"`
	Type        string `json:"type" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}

type DeviceCondition struct {
	BaseModel
	Condition   string `json:"condition" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}
